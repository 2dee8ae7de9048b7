package images

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/JaimeStill/menu-lab/internal/menu"
)

// Upload describes a stored image.
type Upload struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Failure records an image that could not be removed during cleanup.
type Failure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// Report summarizes a best-effort cleanup pass.
type Report struct {
	Deleted  int       `json:"deleted"`
	Skipped  int       `json:"skipped"`
	Failures []Failure `json:"failures"`
}

// Merge folds another report into r.
func (r *Report) Merge(other Report) {
	r.Deleted += other.Deleted
	r.Skipped += other.Skipped
	r.Failures = append(r.Failures, other.Failures...)
}

func objectKey(restaurantID, filename string, now time.Time) string {
	return fmt.Sprintf("%s/%d_%s", menu.ImagePrefix(restaurantID), now.UnixMilli(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"%", "_",
		"#", "_",
	)
	return replacer.Replace(name)
}
