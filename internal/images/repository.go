package images

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JaimeStill/menu-lab/internal/menu"
	"github.com/JaimeStill/menu-lab/pkg/storage"
	"github.com/hashicorp/go-multierror"
)

type repo struct {
	storage       storage.System
	logger        *slog.Logger
	baseURL       string
	maxUploadSize int64
	now           func() time.Time
}

// New creates the image system. baseURL is the public origin plus API base
// path that download URLs are built from.
func New(store storage.System, logger *slog.Logger, baseURL string, maxUploadSize int64) System {
	return &repo{
		storage:       store,
		logger:        logger.With("system", "images"),
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		maxUploadSize: maxUploadSize,
		now:           time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxUploadSize)
}

func (r *repo) Upload(ctx context.Context, restaurantID, filename string, data []byte) (*Upload, error) {
	if restaurantID == "" {
		return nil, menu.Missing("restaurantId")
	}
	if filename == "" || len(data) == 0 {
		return nil, ErrInvalidFile
	}
	if int64(len(data)) > r.maxUploadSize {
		return nil, ErrFileTooLarge
	}

	key := objectKey(restaurantID, filename, r.now())
	if err := r.storage.Store(ctx, key, data); err != nil {
		return nil, menu.Wrap("store image", key, err)
	}

	r.logger.Info("image uploaded", "path", key, "size", len(data))
	return &Upload{Path: key, URL: DownloadURL(r.baseURL, key)}, nil
}

func (r *repo) Data(ctx context.Context, path string) ([]byte, string, error) {
	data, err := r.storage.Retrieve(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidKey) {
			return nil, "", ErrNotFound
		}
		return nil, "", menu.Wrap("read image", path, err)
	}
	return data, http.DetectContentType(data), nil
}

func (r *repo) Remove(ctx context.Context, restaurantID, imageURL string) error {
	if restaurantID == "" {
		return menu.Missing("restaurantId")
	}
	if imageURL == "" {
		return menu.Missing("url")
	}

	path, err := StoragePath(imageURL)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(path, menu.ImagePrefix(restaurantID)+"/") {
		return ErrForeignReference
	}

	if err := r.storage.Delete(ctx, path); err != nil {
		return menu.Wrap("delete image", path, err)
	}

	r.logger.Info("image removed", "path", path)
	return nil
}

func (r *repo) Cleanup(ctx context.Context, restaurantID string, imageURLs []string) (Report, error) {
	report := Report{Failures: []Failure{}}
	var errs *multierror.Error

	prefix := menu.ImagePrefix(restaurantID) + "/"
	for _, u := range imageURLs {
		path, err := StoragePath(u)
		if err != nil {
			r.logger.Warn("skipping image reference", "url", u, "error", err)
			report.Skipped++
			continue
		}
		if !strings.HasPrefix(path, prefix) {
			r.logger.Warn("skipping foreign image reference", "restaurant", restaurantID, "path", path)
			report.Skipped++
			continue
		}

		r.logger.Debug("deleting image", "path", path)
		if err := r.storage.Delete(ctx, path); err != nil {
			report.Failures = append(report.Failures, Failure{URL: u, Reason: err.Error()})
			errs = multierror.Append(errs, fmt.Errorf("delete %s: %w", path, err))
			continue
		}
		report.Deleted++
	}

	return report, errs.ErrorOrNil()
}
