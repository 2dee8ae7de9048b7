package menu_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/auth"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
	"github.com/JaimeStill/menu-lab/pkg/keylock"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Vegetarian", "vegetarian"},
		{"Hot Drinks", "hot_drinks"},
		{"Chef's   Specials\tToday", "chef's_specials_today"},
		{"desserts", "desserts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := menu.NormalizeKey(tt.name); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{menu.SectionsCollection("r1"), "restaurants/r1/sections"},
		{menu.SectionPath("r1", "veg"), "restaurants/r1/sections/veg"},
		{menu.FoodsCollection("r1", "veg"), "restaurants/r1/sections/veg/foodItems"},
		{menu.FoodPath("r1", "veg", "a"), "restaurants/r1/sections/veg/foodItems/a"},
		{menu.OperationPath("r1", "k1"), "restaurants/r1/operations/k1"},
		{menu.ImagePrefix("r1"), "restaurants/r1/foodItems"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("path = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestValidationError(t *testing.T) {
	err := menu.Missing("restaurantId")

	if err.Error() != "Missing restaurantId" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, menu.ErrValidation) {
		t.Error("ValidationError should match ErrValidation")
	}

	labelled := &menu.ValidationError{Field: "name", Label: "food name"}
	if labelled.Error() != "Missing food name" {
		t.Errorf("Error() = %q", labelled.Error())
	}
	mismatch := &menu.ValidationError{Field: "newSectionId", Message: "newSectionId does not match"}
	if mismatch.Error() != "newSectionId does not match" || !errors.Is(mismatch, menu.ErrValidation) {
		t.Errorf("Error() = %q", mismatch.Error())
	}
}

func TestOperationLock(t *testing.T) {
	if got := menu.OperationLock("r1", "k1"); got == menu.SectionLock("r1", "k1") {
		t.Errorf("OperationLock() = %q collides with the section lock", got)
	}
}

func TestWrap(t *testing.T) {
	if menu.Wrap("set", "x", nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := menu.Wrap("delete item", "restaurants/r1/sections/veg/foodItems/a", docstore.ErrNotFound)

	var storeErr *menu.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatal("Wrap should return a StoreError")
	}
	if storeErr.Op != "delete item" {
		t.Errorf("Op = %q", storeErr.Op)
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Error("StoreError should unwrap to the cause")
	}
	if err.Error() != "delete item restaurants/r1/sections/veg/foodItems/a: docstore: document not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", menu.Missing("sectionId"), http.StatusBadRequest},
		{"malformed", fmt.Errorf("remove: %w", menu.ErrMalformedReference), http.StatusBadRequest},
		{"invalid path", docstore.ErrInvalidPath, http.StatusBadRequest},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden},
		{"not found", menu.ErrNotFound, http.StatusNotFound},
		{"document not found", menu.Wrap("get", "p", docstore.ErrNotFound), http.StatusNotFound},
		{"lock timeout", keylock.ErrTimeout, http.StatusConflict},
		{"store failure", menu.Wrap("set", "p", errors.New("disk full")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := menu.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestText_UnmarshalJSON(t *testing.T) {
	var f struct {
		Calories menu.Text `json:"calories"`
		Protein  menu.Text `json:"protein"`
		Fat      menu.Text `json:"fat"`
		Carbs    menu.Text `json:"carbs"`
	}

	data := `{"calories": 350, "protein": "12g", "fat": null, "carbs": 4.50}`
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if f.Calories != "350" || f.Protein != "12g" || f.Fat != "" || f.Carbs != "4.50" {
		t.Errorf("decoded = %+v", f)
	}

	if err := json.Unmarshal([]byte(`{"calories": true}`), &f); err == nil {
		t.Error("expected error for boolean value")
	}
}

func TestAuthorize(t *testing.T) {
	ctx := auth.WithSubject(context.Background(), "r1")

	if err := menu.Authorize(ctx, ""); err != nil {
		t.Errorf("empty restaurant id should pass through: %v", err)
	}
	if err := menu.Authorize(ctx, "r1"); err != nil {
		t.Errorf("matching restaurant: %v", err)
	}
	if err := menu.Authorize(ctx, "r2"); !errors.Is(err, auth.ErrForbidden) {
		t.Errorf("err = %v, want %v", err, auth.ErrForbidden)
	}
}
