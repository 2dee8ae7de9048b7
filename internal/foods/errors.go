package foods

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/menu"
)

var ErrNotFound = errors.New("food item not found")

// MapHTTPStatus maps food item errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return menu.MapHTTPStatus(err)
}
