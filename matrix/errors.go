// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. No algorithm should
// panic on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on differently-shaped matrices, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (transitive closure is only defined on a square adjacency).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrFrozen indicates Set was called on a frozen (CSR) matrix; build-time
	// mutation is only legal before Freeze.
	ErrFrozen = errors.New("matrix: matrix is frozen, cannot mutate")
)

// matrixErrorf wraps an inner error with call-site context, e.g.
// matrixErrorf("Multiply", ErrDimensionMismatch) -> "matrix: Multiply: matrix: dimension mismatch".
func matrixErrorf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return "matrix: " + e.op + ": " + e.err.Error() }

func (e *opError) Unwrap() error { return e.err }
