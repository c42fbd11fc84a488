package retwall

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a numeric field could not be parsed as a real number.
var ErrInvalidInput = errors.New("not a number")

// ErrOverflow indicates finite dimensions produced a quantity too large to represent.
var ErrOverflow = errors.New("quantity overflows float64")

// InvalidInputError reports the numeric field that failed to parse.
type InvalidInputError struct {
	Field string // yaml key of the field, e.g. "depth_foundation"
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates a new InvalidInputError wrapping ErrInvalidInput.
func NewInvalidInputError(field, value string) *InvalidInputError {
	return &InvalidInputError{
		Field: field,
		Value: value,
		Err:   ErrInvalidInput,
	}
}
