package symbol

import (
	"errors"
	"fmt"
)

// Constraint sentinels carried by ValidationError.
var (
	ErrEmptyValue = errors.New("symbol: value must not be empty")
	ErrTooLong    = errors.New("symbol: value too long")
	ErrBadFormat  = errors.New("symbol: value contains disallowed characters")
)

// ValidationError reports a rejected construction input alongside the
// violated constraint. It is the only error produced by the checked
// constructors; every other operation on a constructed Symbol is total.
type ValidationError struct {
	Value      string
	Constraint string
	Err        error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("symbol: invalid value %q: %s", e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newValidationError(value, constraint string, err error) error {
	return &ValidationError{
		Value:      value,
		Constraint: constraint,
		Err:        err,
	}
}
