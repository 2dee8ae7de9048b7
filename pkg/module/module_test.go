package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/module"
)

func TestNew_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "api", "/api/v1"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, http.NewServeMux())
		})
	}
}

func TestModule_Serve_StripsPrefix(t *testing.T) {
	var got string
	m := module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Path
	}))

	tests := []struct {
		target string
		want   string
	}{
		{"/api/sections", "/sections"},
		{"/api/foods/abc", "/foods/abc"},
		{"/api", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			m.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))
			if got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModule_Use_Order(t *testing.T) {
	var order []string
	m := module.New("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	for _, name := range []string{"outer", "inner"} {
		m.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	m.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/x", nil))

	if len(order) != 3 || order[0] != "outer" || order[1] != "inner" || order[2] != "handler" {
		t.Errorf("order = %v", order)
	}
}

func TestModule_Use_SeesFullPath(t *testing.T) {
	m := module.New("/api", http.NotFoundHandler())

	var seen string
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r.URL.Path
			next.ServeHTTP(w, r)
		})
	})

	m.Serve(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/sections/", nil))

	if seen != "/api/sections/" {
		t.Errorf("middleware path = %q, want full path", seen)
	}
}
