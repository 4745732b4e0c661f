// SPDX-License-Identifier: MIT

package multiply

import (
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

const opSequential = "Sequential"

// Sequential computes C[i][j] = Σ_k A[i][k]·B[k][j] with three nested loops
// in strict i → j → k order on the calling goroutine.
//
// Stage 1 (Validate): a, b non-nil with equal n.
// Stage 2 (Prepare): allocate the zeroed n×n result.
// Stage 3 (Execute): start the clock, run the loops, stop the clock.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (wrapped).
// Complexity: O(n³) time, O(n²) space for the result.
func Sequential(a, b *matrix.Dense) (Result, error) {
	if err := matrix.ValidateMulOperands(a, b); err != nil {
		return Result{}, multiplyErrorf(opSequential, err)
	}

	n := a.N()
	res, err := matrix.NewDense(n)
	if err != nil {
		return Result{}, multiplyErrorf(opSequential, err)
	}

	ad, bd, cd := a.Raw(), b.Raw(), res.Raw()
	var (
		i, j, k int
		sum     int64
	)

	start := time.Now()
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += ad[i*n+k] * bd[k*n+j]
			}
			cd[i*n+j] = sum
		}
	}
	elapsed := time.Since(start)

	return Result{
		Strategy: NameSequential,
		Workers:  1,
		Elapsed:  elapsed,
		Product:  res,
	}, nil
}

// dot returns Σ_k A[i][k]·B[k][j] over k in [lo, hi).
func dot(ad, bd []int64, n, i, j, lo, hi int) int64 {
	var sum int64
	row := ad[i*n : i*n+n]
	for k := lo; k < hi; k++ {
		sum += row[k] * bd[k*n+j]
	}
	return sum
}
