// Package module mounts self-contained HTTP handlers under a single-segment
// URL prefix. A Module strips its prefix before dispatching so handlers
// register routes relative to their own root.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/middleware"
)

// Module is an HTTP handler mounted at a prefix with its own middleware stack.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a Module. The prefix must be a single path segment with a
// leading slash, such as "/api"; New panics otherwise.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware. Middleware
// sees the full request path; the prefix is stripped just before dispatch.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(http.HandlerFunc(m.dispatch))
}

// Serve runs the module middleware and dispatches the request.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	m.Handler().ServeHTTP(w, r)
}

func (m *Module) dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.handler.ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix %q must be a single segment", prefix)
	}
	return nil
}
