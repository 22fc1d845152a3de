package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrAssignmentDisabled = errors.New("issue auto-assignment is disabled")
	ErrQueryFailed        = errors.New("issue query failed")
	ErrMalformedField     = errors.New("malformed field")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrConfigExists       = errors.New("config file already exists")
	ErrUnknownBackend     = errors.New("unknown issue source backend")
	ErrUnknownFormat      = errors.New("unknown report format")
)

// FieldError reports a value that could not be converted to its typed field.
type FieldError struct {
	Field string
	Value string
	Line  int // 1-based line of the source output, 0 when not applicable
	Err   error
}

func (e *FieldError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap lets errors.Is match ErrMalformedField and the underlying cause.
func (e *FieldError) Unwrap() []error {
	return []error{ErrMalformedField, e.Err}
}
