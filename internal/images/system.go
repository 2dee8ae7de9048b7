package images

import (
	"context"
)

// System manages item image blobs.
type System interface {
	Handler() *Handler

	// Upload stores data under the restaurant's image prefix.
	Upload(ctx context.Context, restaurantID, filename string, data []byte) (*Upload, error)

	// Data returns an object's bytes and detected content type.
	Data(ctx context.Context, path string) ([]byte, string, error)

	// Remove deletes the object referenced by imageURL. The reference must
	// resolve to a path under the restaurant's prefix.
	Remove(ctx context.Context, restaurantID, imageURL string) error

	// Cleanup deletes every referenced object under the restaurant's prefix.
	// Malformed and foreign references are logged and skipped. Delete
	// failures are listed in the report and aggregated into the returned
	// error; the report is complete either way.
	Cleanup(ctx context.Context, restaurantID string, imageURLs []string) (Report, error)
}
