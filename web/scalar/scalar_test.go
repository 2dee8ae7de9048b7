package scalar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/menu-lab/web/scalar"
)

func TestNewModule(t *testing.T) {
	m, err := scalar.NewModule("/scalar", "Menu Lab API", "/api/openapi.json")
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	w := httptest.NewRecorder()
	m.Serve(w, httptest.NewRequest(http.MethodGet, "/scalar", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `data-url="/api/openapi.json"`) || !strings.Contains(body, "<title>Menu Lab API</title>") {
		t.Errorf("body = %s", body)
	}
}
