// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and validators return these sentinels (possibly wrapped
// with %w); callers match them via errors.Is. Nothing in this package panics
// on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING
// --------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Context is attached with matrixErrorf at the detection site.

var (
	// ErrBadShape is returned when a requested dimension is negative or a
	// row-slice literal is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different dimension n.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf prefixes err with an operation tag, keeping the sentinel
// reachable through errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
