// Package routes declares HTTP routes in groups that register on a ServeMux
// and describe themselves in an OpenAPI specification.
package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation

	// Public routes are never wrapped by Protect.
	Public bool
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds every documented route in the group and its children to spec.
// Operations without tags inherit the group tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	prefix := basePath + g.Prefix

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(specPath(prefix+route.Pattern), route.Method, &op)
	}

	for _, child := range g.Children {
		child.AddToSpec(prefix, spec)
	}
}

func (g *Group) register(mux *http.ServeMux, parentPrefix string) {
	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range g.Children {
		child.register(mux, prefix)
	}
}

// Register mounts groups on mux relative to the module root and documents
// them in spec under basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		group.AddToSpec(basePath, spec)
		group.register(mux, "")
	}
}

// Protect returns a copy of group with guard applied to every non-public route.
func Protect(guard func(http.HandlerFunc) http.HandlerFunc, group Group) Group {
	out := group
	out.Routes = make([]Route, len(group.Routes))
	for i, route := range group.Routes {
		if !route.Public {
			route.Handler = guard(route.Handler)
		}
		out.Routes[i] = route
	}

	out.Children = make([]Group, len(group.Children))
	for i, child := range group.Children {
		out.Children[i] = Protect(guard, child)
	}
	return out
}

// specPath converts mux wildcards such as {path...} to OpenAPI templates.
func specPath(pattern string) string {
	return strings.ReplaceAll(pattern, "...}", "}")
}
