package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
)

// filesystem stores blobs as files under basePath,
// with keys mapping directly to relative file paths.
type filesystem struct {
	basePath string
	logger   *slog.Logger
}

// NewFilesystem creates a filesystem storage system rooted at basePath.
// Directory creation is deferred to Start.
func NewFilesystem(basePath string, logger *slog.Logger) (System, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: absPath,
		logger:   logger.With("system", "storage", "driver", DriverFilesystem),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system", "base_path", f.basePath)

	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return fmt.Errorf("create base_path: %w", err)
	}

	return nil
}

func (f *filesystem) Store(ctx context.Context, key string, data []byte) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (f *filesystem) Retrieve(ctx context.Context, key string) ([]byte, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapFSError("read file", err)
	}

	return data, nil
}

func (f *filesystem) Delete(ctx context.Context, key string) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return mapFSError("remove file", err)
	}

	f.pruneEmpty(filepath.Dir(path))
	return nil
}

func (f *filesystem) Validate(ctx context.Context, key string) (bool, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, mapFSError("stat file", err)
	}

	return true, nil
}

// pruneEmpty removes empty directories from dir up to, but not including, the base path.
func (f *filesystem) pruneEmpty(dir string) {
	for dir != f.basePath && strings.HasPrefix(dir, f.basePath+string(filepath.Separator)) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			f.logger.Warn("failed to read directory for cleanup", "dir", dir, "error", err)
			return
		}
		if len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("failed to remove empty directory", "dir", dir, "error", err)
			return
		}
		dir = filepath.Dir(dir)
	}
}

func (f *filesystem) fullPath(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidKey
	}

	fullPath := filepath.Join(f.basePath, cleaned)
	if !strings.HasPrefix(fullPath, f.basePath+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return fullPath, nil
}

func mapFSError(op string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
