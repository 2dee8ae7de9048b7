package foods_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/openapi"
	"github.com/JaimeStill/menu-lab/pkg/routes"
)

func newMux(t *testing.T) (*http.ServeMux, *fixture) {
	t.Helper()
	f := newFixture(t)
	mux := http.NewServeMux()
	routes.Register(mux, "/api", openapi.NewSpec("test", "0.0.0"), f.sys.Handler().Routes())
	return mux, f
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestHandler_Lifecycle(t *testing.T) {
	mux, _ := newMux(t)

	w := serve(mux, http.MethodPost, "/foods",
		`{"restaurantId":"r1","sectionId":"mains","name":"Ramen","calories":520,"price":"11.5","images":null}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created map[string]string
	json.NewDecoder(w.Body).Decode(&created)
	id := created["id"]
	if id == "" {
		t.Fatal("create returned no id")
	}

	w = serve(mux, http.MethodGet, "/foods/"+id+"?restaurantId=r1&sectionId=mains", "")
	if w.Code != http.StatusOK {
		t.Fatalf("find status = %d", w.Code)
	}
	var food struct {
		Name     string   `json:"name"`
		Calories string   `json:"calories"`
		Images   []string `json:"images"`
	}
	json.NewDecoder(w.Body).Decode(&food)
	if food.Name != "Ramen" || food.Calories != "520" || food.Images == nil {
		t.Errorf("find = %+v", food)
	}

	w = serve(mux, http.MethodGet, "/foods?restaurantId=r1&sectionId=mains&search=ram", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total":1`) {
		t.Errorf("list status = %d, body = %s", w.Code, w.Body.String())
	}

	w = serve(mux, http.MethodPut, "/foods",
		`{"id":"`+id+`","restaurantId":"r1","sectionId":"mains","name":"Tonkotsu Ramen"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Food item updated") {
		t.Errorf("update status = %d, body = %s", w.Code, w.Body.String())
	}

	w = serve(mux, http.MethodDelete, "/foods", `{"id":"`+id+`","restaurantId":"r1","sectionId":"mains"}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Food item deleted") {
		t.Errorf("delete status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestHandler_Errors(t *testing.T) {
	mux, _ := newMux(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"create missing name", http.MethodPost, "/foods", `{"restaurantId":"r1","sectionId":"mains"}`, http.StatusBadRequest},
		{"create bad calories", http.MethodPost, "/foods", `{"restaurantId":"r1","sectionId":"mains","name":"x","calories":[1]}`, http.StatusBadRequest},
		{"update missing id", http.MethodPut, "/foods", `{"restaurantId":"r1","sectionId":"mains","name":"x"}`, http.StatusBadRequest},
		{"find missing", http.MethodGet, "/foods/nope?restaurantId=r1&sectionId=mains", ``, http.StatusNotFound},
		{"list missing section", http.MethodGet, "/foods?restaurantId=r1", ``, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(mux, tt.method, tt.target, tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
