package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/middleware"
)

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		status   int
		location string
	}{
		{"trailing slash", "/sections/", http.StatusMovedPermanently, "/sections"},
		{"query preserved", "/foods/?restaurantId=r1", http.StatusMovedPermanently, "/foods?restaurantId=r1"},
		{"no slash", "/sections", http.StatusOK, ""},
		{"root", "/", http.StatusOK, ""},
	}

	wrapped := middleware.TrimSlash()(okHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := w.Header().Get("Location"); got != tt.location {
				t.Errorf("Location = %q, want %q", got, tt.location)
			}
		})
	}
}
