// Package domain holds types shared across modules.
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record id does not exist.
// Handlers map it to HTTP 404.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects malformed input before any write is attempted.
// Handlers map it to HTTP 422.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for a field.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
