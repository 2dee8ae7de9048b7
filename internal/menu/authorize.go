package menu

import (
	"context"

	"github.com/JaimeStill/menu-lab/pkg/auth"
)

// Authorize checks the request token against restaurantID. An empty id is
// allowed through so validation can name the missing field.
func Authorize(ctx context.Context, restaurantID string) error {
	if restaurantID == "" {
		return nil
	}
	return auth.Authorize(ctx, restaurantID)
}
