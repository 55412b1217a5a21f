// Package apperr defines the error taxonomy shared across the service.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound signals an unknown model, condition or booking reference.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCode signals a reference code unique-index violation.
	// Callers treat it as the trigger to regenerate and retry.
	ErrDuplicateCode = errors.New("duplicate reference code")

	// ErrStorageUnavailable signals that the persistence layer is unreachable
	// or failed in a way the caller may retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCodeSpaceExhausted signals that reference code allocation gave up
	// after hitting its retry ceiling.
	ErrCodeSpaceExhausted = errors.New("reference code space exhausted")
)

// ValidationError carries field-level detail for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation builds a ValidationError from field/message pairs.
func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
