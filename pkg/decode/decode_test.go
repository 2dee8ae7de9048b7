package decode_test

import (
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/decode"
)

type item struct {
	Name   string   `json:"name"`
	Price  string   `json:"price,omitempty"`
	Images []string `json:"images"`
}

func TestFromMap(t *testing.T) {
	data := map[string]any{
		"name":   "Salad",
		"images": []any{"a.png", "b.png"},
		"extra":  true,
	}

	got, err := decode.FromMap[item](data)
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if got.Name != "Salad" || len(got.Images) != 2 || got.Images[1] != "b.png" {
		t.Errorf("FromMap() = %+v", got)
	}
}

func TestFromMap_TypeMismatch(t *testing.T) {
	if _, err := decode.FromMap[item](map[string]any{"name": 42}); err == nil {
		t.Error("expected error decoding number into string field")
	}
}

func TestToMap(t *testing.T) {
	got, err := decode.ToMap(item{Name: "Soup", Images: []string{"x"}})
	if err != nil {
		t.Fatalf("ToMap() error = %v", err)
	}

	if got["name"] != "Soup" {
		t.Errorf("name = %v", got["name"])
	}
	if _, ok := got["price"]; ok {
		t.Error("omitempty field should be absent")
	}
	images, ok := got["images"].([]any)
	if !ok || len(images) != 1 {
		t.Errorf("images = %#v", got["images"])
	}
}

func TestToMap_NotObject(t *testing.T) {
	if _, err := decode.ToMap([]string{"a"}); err == nil {
		t.Error("expected error for non-object value")
	}
}
