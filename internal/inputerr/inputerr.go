// Package inputerr defines the error kind returned when puzzle input is
// rejected at the boundary, before it reaches the search core.
package inputerr

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every boundary validation failure: empty or
// non-square grids, non-letter cells and empty vocabularies.
var ErrInvalidInput = errors.New("invalid input")

// New returns an error that wraps ErrInvalidInput with a formatted reason.
func New(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Is reports whether err is an invalid input error.
func Is(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
