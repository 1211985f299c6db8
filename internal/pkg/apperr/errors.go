// internal/pkg/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
)

// Error kinds shared by every domain package. Specific errors wrap one of
// these so callers can branch on the kind with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// NotFound builds a sentinel of kind ErrNotFound
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

// Invalid builds a sentinel of kind ErrInvalidInput
func Invalid(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidInput)
}

// Wrap adds context to an error while keeping it matchable
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// IsNotFound reports whether err is of kind ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is of kind ErrInvalidInput
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
