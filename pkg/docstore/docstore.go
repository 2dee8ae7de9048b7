// Package docstore provides a hierarchical document store. Paths alternate
// collection and document segments ("restaurants/{id}/sections/{id}"), documents
// hold free-form field maps, and every backend offers the same per-document
// semantics: full-overwrite writes, single-level collection scans, and deletes
// that treat a missing document as success.
package docstore

import (
	"context"
	"errors"
	"strings"

	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
	"github.com/google/uuid"
)

var (
	// ErrNotFound indicates no document exists at the requested path.
	ErrNotFound = errors.New("docstore: document not found")

	// ErrInvalidPath indicates a path with empty segments, a segment containing
	// a separator, or the wrong segment parity for the operation.
	ErrInvalidPath = errors.New("docstore: invalid path")
)

const separator = "/"

// Document is a stored document addressed by its full path.
type Document struct {
	ID   string         `json:"id"`
	Path string         `json:"path"`
	Data map[string]any `json:"data"`
}

// Store defines the operations every document store backend provides.
type Store interface {
	// Get returns the document at path or ErrNotFound.
	Get(ctx context.Context, path string) (*Document, error)

	// Set writes data at path, replacing any existing document.
	Set(ctx context.Context, path string, data map[string]any) error

	// List returns the documents directly inside collection, ordered by ID.
	// Documents in nested sub-collections are not included.
	List(ctx context.Context, collection string) ([]Document, error)

	// Delete removes the document at path. Deleting a missing document succeeds.
	// Sub-collections of the document are not removed.
	Delete(ctx context.Context, path string) error

	// Start registers connection checks and shutdown hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error

	Close() error
}

// Add writes data under collection with a newly generated document ID.
func Add(ctx context.Context, s Store, collection string, data map[string]any) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}

	id := NewID()
	if err := s.Set(ctx, Doc(collection, id), data); err != nil {
		return "", err
	}
	return id, nil
}

// NewID returns an opaque document identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Join builds a path from its segments.
func Join(segments ...string) string {
	return strings.Join(segments, separator)
}

// Doc returns the path of document id within collection.
func Doc(collection, id string) string {
	return collection + separator + id
}

// Split returns the parent collection and document ID of a document path.
func Split(path string) (parent, id string) {
	i := strings.LastIndex(path, separator)
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

func segments(path string) ([]string, error) {
	if path == "" {
		return nil, ErrInvalidPath
	}
	parts := strings.Split(path, separator)
	for _, p := range parts {
		if p == "" || strings.TrimSpace(p) != p {
			return nil, ErrInvalidPath
		}
	}
	return parts, nil
}

func validateDoc(path string) error {
	parts, err := segments(path)
	if err != nil {
		return err
	}
	if len(parts)%2 != 0 {
		return ErrInvalidPath
	}
	return nil
}

func validateCollection(path string) error {
	parts, err := segments(path)
	if err != nil {
		return err
	}
	if len(parts)%2 != 1 {
		return ErrInvalidPath
	}
	return nil
}
