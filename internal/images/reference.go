package images

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/JaimeStill/menu-lab/internal/menu"
)

// objectMarker captures the object path between "/o/" and the query string.
var objectMarker = regexp.MustCompile(`/o/([^?]+)`)

// StoragePath extracts the object store path from a download URL.
// The URL is percent-decoded first, so "%2F" separators become "/".
// A URL without the marker returns menu.ErrMalformedReference.
func StoragePath(rawURL string) (string, error) {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", menu.ErrMalformedReference, err)
	}

	m := objectMarker.FindStringSubmatch(decoded)
	if m == nil || m[1] == "" {
		return "", fmt.Errorf("%w: %q", menu.ErrMalformedReference, rawURL)
	}

	return m[1], nil
}

// DownloadURL builds the public URL for an object path. The whole path is
// escaped as one segment so StoragePath recovers it unchanged.
func DownloadURL(baseURL, path string) string {
	return baseURL + "/images/o/" + url.PathEscape(path) + "?alt=media"
}
