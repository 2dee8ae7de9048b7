package sections

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/menu"
)

var (
	ErrNotFound  = errors.New("section not found")
	ErrDuplicate = errors.New("section already exists")

	// ErrKeyReused indicates an Idempotency-Key was presented with a
	// different request than the one it was first used for.
	ErrKeyReused = errors.New("idempotency key reused with a different request")
)

// MapHTTPStatus maps section errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrKeyReused):
		return http.StatusUnprocessableEntity
	default:
		return menu.MapHTTPStatus(err)
	}
}
