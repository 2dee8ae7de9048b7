package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Menu Lab API", "0.1.0")
	spec.SetDescription("menus")
	spec.AddServer("http://localhost:8080")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("OpenAPI = %q", spec.OpenAPI)
	}
	if spec.Info.Description != "menus" {
		t.Errorf("Description = %q", spec.Info.Description)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "http://localhost:8080" {
		t.Errorf("Servers = %v", spec.Servers)
	}
	for _, name := range []string{"BadRequest", "Unauthorized", "Forbidden", "NotFound", "Conflict", "InternalError"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing shared response %s", name)
		}
	}
}

func TestSpec_AddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")

	methods := []string{"get", "POST", "PUT", "PATCH", "DELETE"}
	for _, m := range methods {
		spec.AddOperation("/sections", m, &openapi.Operation{Summary: m})
	}

	item := spec.Paths["/sections"]
	if item.Get.Summary != "get" || item.Post == nil || item.Put == nil || item.Patch == nil || item.Delete == nil {
		t.Errorf("path item not fully populated: %+v", item)
	}
}

func TestMarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	spec.AddOperation("/foods", "POST", &openapi.Operation{
		Parameters:  []*openapi.Parameter{openapi.HeaderParam("Idempotency-Key", "key")},
		RequestBody: openapi.RequestBodyJSON("CreateFoodCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Created", "Message"),
			400: openapi.ResponseRef("BadRequest"),
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	post := doc["paths"].(map[string]any)["/foods"].(map[string]any)["post"].(map[string]any)
	responses := post["responses"].(map[string]any)
	if ref := responses["400"].(map[string]any)["$ref"]; ref != "#/components/responses/BadRequest" {
		t.Errorf("400 $ref = %v", ref)
	}
	param := post["parameters"].([]any)[0].(map[string]any)
	if param["in"] != "header" {
		t.Errorf("parameter in = %v, want header", param["in"])
	}
}

func TestServeSpec(t *testing.T) {
	w := httptest.NewRecorder()
	openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != `{"openapi":"3.1.0"}` {
		t.Errorf("body = %q", w.Body.String())
	}
}
