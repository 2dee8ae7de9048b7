package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/module"
)

func newRouter() *module.Router {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sections", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("sections"))
	})

	router := module.NewRouter()
	router.Mount(module.New("/api", mux))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	return router
}

func TestRouter_ServeHTTP(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name   string
		target string
		status int
		body   string
	}{
		{"module route", "/api/sections", http.StatusOK, "sections"},
		{"trailing slash trimmed", "/api/sections/", http.StatusOK, "sections"},
		{"native route", "/healthz", http.StatusOK, "OK"},
		{"unknown module route", "/api/unknown", http.StatusNotFound, ""},
		{"unknown native route", "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
