// SPDX-License-Identifier: MIT

// Package matrix provides the square integer matrix shared by the generator
// and the multipliers.
//
// What & Why:
//
//	Dense is an n×n row-major buffer of int64 values. Inputs to a multiply are
//	lent read-only to every strategy; each strategy allocates its own result
//	and writes every cell exactly once. Integer cells keep all strategies
//	bit-identical regardless of accumulation order.
//
// Shape policy:
//
//	n == 0 is a valid, empty matrix (0×0). Negative n is rejected with
//	ErrBadShape. Non-square input is rejected with ErrNonSquare.
//
// Complexity:
//
//	NewDense: O(n²) zero-init. At/Set: O(1). Clone/Equal: O(n²).
package matrix
