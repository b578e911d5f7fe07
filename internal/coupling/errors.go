package coupling

import (
	"errors"
	"fmt"
)

// Domain errors for coupling analysis.
var (
	// ErrInvalidInput indicates a capacitance value that cannot form a
	// physically meaningful matrix (non-positive self term, NaN or Inf).
	ErrInvalidInput = errors.New("coupling: invalid input capacitance")

	// ErrSingularMatrix indicates a capacitance matrix whose determinant is
	// numerically zero; the conductor configuration is degenerate.
	ErrSingularMatrix = errors.New("coupling: capacitance matrix is singular")

	// ErrNotSymmetric indicates off-diagonal entries that disagree beyond
	// tolerance (Cij != Cji).
	ErrNotSymmetric = errors.New("coupling: capacitance matrix is not symmetric")

	// ErrUnrealizable indicates a derived self-inductance <= 0; no physical
	// conductor system produces such a capacitance matrix.
	ErrUnrealizable = errors.New("coupling: unrealizable input (non-positive self-inductance)")

	// ErrDimension indicates a matrix smaller than 2x2.
	ErrDimension = errors.New("coupling: matrix must be at least 2x2")
)

// EntryError wraps a domain error with the offending matrix entry.
type EntryError struct {
	Row, Col int
	Value    float64
	Wrapped  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%v: entry (%d,%d) = %g", e.Wrapped, e.Row, e.Col, e.Value)
}

func (e *EntryError) Unwrap() error {
	return e.Wrapped
}

func entryErr(i, j int, v float64, wrapped error) error {
	return &EntryError{Row: i, Col: j, Value: v, Wrapped: wrapped}
}
