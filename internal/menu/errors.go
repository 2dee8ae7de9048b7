package menu

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JaimeStill/menu-lab/pkg/auth"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
	"github.com/JaimeStill/menu-lab/pkg/keylock"
)

var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrNotFound = errors.New("not found")

	// ErrMalformedReference indicates an image URL carries no object path.
	// It is logged and skipped by cleanup, never returned to API callers
	// except by explicit image removal.
	ErrMalformedReference = errors.New("malformed image reference")
)

// ValidationError reports a missing or inconsistent request field.
type ValidationError struct {
	Field string

	// Label overrides Field in the message.
	Label string

	// Message replaces the default "Missing" message.
	Message string
}

func Missing(field string) *ValidationError {
	return &ValidationError{Field: field}
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Label != "" {
		return "Missing " + e.Label
	}
	return "Missing " + e.Field
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StoreError wraps a failed document or object store call with the
// operation that issued it and the document it targeted.
type StoreError struct {
	Op     string
	Target string
	Err    error
}

func (e *StoreError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Wrap returns nil for a nil err and a StoreError otherwise.
func Wrap(op, target string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Target: target, Err: err}
}

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrMalformedReference), errors.Is(err, docstore.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound), errors.Is(err, docstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, keylock.ErrTimeout):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
