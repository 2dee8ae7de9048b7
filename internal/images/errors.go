// Package images stores item photos in the object store and resolves the
// download URLs kept on food items back to object paths.
package images

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/menu"
)

var (
	ErrNotFound     = errors.New("image not found")
	ErrInvalidFile  = errors.New("invalid or missing file")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")

	// ErrForeignReference indicates an image path outside the restaurant's prefix.
	ErrForeignReference = errors.New("image does not belong to restaurant")
)

// MapHTTPStatus maps image errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidFile), errors.Is(err, ErrForeignReference):
		return http.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return menu.MapHTTPStatus(err)
	}
}
