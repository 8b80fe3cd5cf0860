// Package solver implements the constraint-optimization core: it turns
// a snapshot of employees, shift types, coverage requirements, absences,
// locks, and constraint rules into a CP-SAT model, solves it within a
// wall-clock budget, and extracts a roster from the solution.
package solver

import (
	"errors"
	"fmt"
)

// ErrInput is the sentinel wrapped by every error returned before the
// model is built: malformed records, out-of-range fields, or internal
// invariant violations such as a coverage record or lock referencing an
// unknown shift or employee id. Both shapes are reported synchronously,
// before any solver work starts.
var ErrInput = errors.New("invalid solve input")

// InputError carries the offending field and a human-readable reason
// alongside the wrapped ErrInput sentinel.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInput
}

func inputErrorf(field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
