// Package middleware provides composable HTTP middleware: request logging,
// CORS, and trailing slash normalization.
package middleware

import "net/http"

// System accumulates middleware and applies it to a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type middleware struct {
	stack []func(http.Handler) http.Handler
}

func New() System {
	return &middleware{
		stack: []func(http.Handler) http.Handler{},
	}
}

func (m *middleware) Use(mw func(http.Handler) http.Handler) {
	m.stack = append(m.stack, mw)
}

// Apply wraps handler so the first registered middleware runs outermost.
func (m *middleware) Apply(handler http.Handler) http.Handler {
	for i := len(m.stack) - 1; i >= 0; i-- {
		handler = m.stack[i](handler)
	}
	return handler
}
