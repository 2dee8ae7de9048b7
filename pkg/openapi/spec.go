package openapi

import (
	"encoding/json"
	"net/http"
	"strings"
)

// NewSpec creates an OpenAPI 3.1 document with shared components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: "3.1.0",
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

func (s *Spec) AddServer(url string) {
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation attaches op to path under the given HTTP method.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// NewComponents returns components pre-populated with the shared error
// responses and pagination schemas.
func NewComponents() *Components {
	errorResponse := func(description string) *Response {
		return &Response{
			Description: description,
			Content: map[string]*MediaType{
				"application/json": {Schema: SchemaRef("Error")},
			},
		}
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string"},
				},
			},
			"Message": {
				Type: "object",
				Properties: map[string]*Schema{
					"message": {Type: "string"},
					"id":      {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":    errorResponse("Invalid request"),
			"Unauthorized":  errorResponse("Missing or invalid bearer token"),
			"Forbidden":     errorResponse("Token does not grant access to the restaurant"),
			"NotFound":      errorResponse("Resource not found"),
			"Conflict":      errorResponse("Resource is locked by a concurrent operation"),
			"InternalError": errorResponse("Store operation failed"),
		},
	}
}

// AddSchemas merges schemas into the component set.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema, len(schemas))
	}
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler serving pre-rendered specification bytes.
func ServeSpec(data []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
