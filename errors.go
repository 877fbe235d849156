package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of all construction errors caused by malformed
	// input. Use errors.Is to test for it, or errors.As with *ValidationError
	// for details.
	ErrValidation = errors.New("spline: invalid input")

	// ErrEmptySpline is returned when building a spline without segments.
	ErrEmptySpline error = &ValidationError{Field: "segments", Reason: "spline has no segments"}

	// ErrSingularMatrix is returned when a linear system has no unique
	// solution, which for basis conversion means the target basis is
	// degenerate.
	ErrSingularMatrix = errors.New("spline: singular matrix")

	// ErrParameterOutOfRange is returned when evaluating a curve outside of
	// t ∈ [0, 1].
	ErrParameterOutOfRange = errors.New("spline: parameter out of range")
)

// ValidationError describes malformed input to a constructor.
type ValidationError struct {
	// Field names the offending input.
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return "spline: " + err.Reason
	}
	return fmt.Sprintf("spline: %s: %s", err.Field, err.Reason)
}

func (err *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
