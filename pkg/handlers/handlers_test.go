package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": "abc"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("id = %q, want %q", body["id"], "abc")
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantLvl  string
		wantBody string
	}{
		{"client error", http.StatusBadRequest, "level=WARN", "Missing restaurantId"},
		{"server error", http.StatusInternalServerError, "level=ERROR", "Missing restaurantId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			w := httptest.NewRecorder()

			handlers.RespondError(w, logger, tt.status, errors.New("Missing restaurantId"))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tt.wantBody {
				t.Errorf("error = %q, want %q", body["error"], tt.wantBody)
			}
			if !strings.Contains(buf.String(), tt.wantLvl) {
				t.Errorf("log = %q, want %s", buf.String(), tt.wantLvl)
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type cmd struct {
		RestaurantID string `json:"restaurantId"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr error
		anyErr  bool
	}{
		{name: "valid", body: `{"restaurantId":"r1"}`, want: "r1"},
		{name: "empty", body: "", wantErr: handlers.ErrEmptyBody},
		{name: "malformed", body: `{"restaurantId":`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got cmd
			err := handlers.DecodeJSON(req, &got)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("expected error")
				}
			default:
				if err != nil {
					t.Fatalf("DecodeJSON() error = %v", err)
				}
				if got.RestaurantID != tt.want {
					t.Errorf("RestaurantID = %q, want %q", got.RestaurantID, tt.want)
				}
			}
		})
	}
}
