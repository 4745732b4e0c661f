// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, square) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the flat buffer (Raw) to hot kernels in sibling packages; kernels
//     validate shape once and then index directly.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone/Equal: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew  = "NewDense"     // ctor tag
	ctxRows = "NewDenseFrom" // ctor tag for row literals
	ctxAt   = "At"           // method tag used in error wrappers
	ctxSet  = "Set"          // method tag used in error wrappers
	ctxRow  = "Row"          // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of int64 values.
//   - n is the side length (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense struct {
	n    int
	data []int64
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// n == 0 yields a valid empty matrix; n < 0 returns ErrBadShape.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n < 0 {
		return nil, matrixErrorf(ctxNew, ErrBadShape)
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// NewDenseFrom copies a row-slice literal into a new Dense.
// Every row must have len(rows) entries; ragged input returns ErrBadShape and
// rectangular input returns ErrNonSquare. A nil or empty slice yields 0×0.
//
// Complexity: O(n²).
func NewDenseFrom(rows [][]int64) (*Dense, error) {
	n := len(rows)
	width := n
	if n > 0 {
		width = len(rows[0])
	}

	var i int
	for i = 1; i < n; i++ {
		if len(rows[i]) != width {
			return nil, matrixErrorf(ctxRows, ErrBadShape)
		}
	}
	if width != n {
		return nil, matrixErrorf(ctxRows, ErrNonSquare)
	}

	m := &Dense{n: n, data: make([]int64, n*n)}
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// N returns the side length of the matrix.
func (m *Dense) N() int { return m.n }

// Rows returns the number of rows (== N).
func (m *Dense) Rows() int { return m.n }

// Cols returns the number of columns (== N).
func (m *Dense) Cols() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice sharing storage with m.
// Mutations through the slice are visible in m.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n], nil
}

// Raw returns the flat row-major backing buffer (length N*N).
// The slice aliases m; kernels use it after validating shapes once.
func (m *Dense) Raw() []int64 { return m.data }

// Clone returns a deep copy of m.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same dimension and identical cells.
// Two nil matrices are equal; nil never equals a non-nil matrix.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToRows materializes m as a freshly allocated row-slice literal.
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = append([]int64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.n+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
