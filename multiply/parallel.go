// SPDX-License-Identifier: MIT

package multiply

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/parallel"
)

const opParallel = "Parallel"

// Parallel computes the same product as Sequential, distributing the work
// according to the configured Strategy (StrategyRows by default).
//
// Stage 1 (Validate): a, b non-nil with equal n.
// Stage 2 (Prepare): allocate the zeroed result; start the pool if any.
// Stage 3 (Execute): start the clock, dispatch, join, stop the clock.
//
// The call blocks until every cell is written. Each output cell is written by
// exactly one task; only StrategyInner shares an accumulator (atomic).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (wrapped).
// Complexity: O(n³) work, O(n²) space for the result.
func Parallel(a, b *matrix.Dense, opts ...Option) (Result, error) {
	if err := matrix.ValidateMulOperands(a, b); err != nil {
		return Result{}, multiplyErrorf(opParallel, err)
	}
	o := gatherOptions(opts...)

	n := a.N()
	res, err := matrix.NewDense(n)
	if err != nil {
		return Result{}, multiplyErrorf(opParallel, err)
	}

	ad, bd, cd := a.Raw(), b.Raw(), res.Raw()
	var elapsed time.Duration
	switch o.strategy {
	case StrategyColumns:
		elapsed = mulColumns(ad, bd, cd, n, o)
	case StrategyInner:
		elapsed = mulInner(ad, bd, cd, n, o)
	case StrategyTiled:
		elapsed = mulTiled(ad, bd, cd, n, o)
	default:
		elapsed = mulRows(ad, bd, cd, n, o)
	}

	return Result{
		Strategy: o.strategy.String(),
		Workers:  o.workers,
		Elapsed:  elapsed,
		Product:  res,
	}, nil
}

// forConfig maps Options onto the range splitter's config.
func (o Options) forConfig() parallel.Config {
	return parallel.Config{Workers: o.workers, MinChunk: o.minChunk}
}

// mulRows hands strips of o.minChunk rows to a worker pool. Each cell is
// computed with a private accumulator.
func mulRows(ad, bd, cd []int64, n int, o Options) time.Duration {
	strip := o.minChunk
	pool := parallel.NewPool(poolSize(o.workers, ceilDiv(n, strip)))
	defer pool.Close()

	start := time.Now()
	for lo := 0; lo < n; lo += strip {
		lo, hi := lo, min(lo+strip, n)
		pool.Submit(func() {
			var i, j int
			for i = lo; i < hi; i++ {
				for j = 0; j < n; j++ {
					cd[i*n+j] = dot(ad, bd, n, i, j, 0, n)
				}
			}
		})
	}
	pool.Wait()

	return time.Since(start)
}

// poolSize caps the worker count at the number of tasks, keeping at least one.
func poolSize(workers, tasks int) int {
	return max(1, min(workers, tasks))
}

// ceilDiv returns ⌈a/b⌉ for a >= 0, b >= 1.
func ceilDiv(a, b int) int {
	return a/b + min(a%b, 1)
}

// mulColumns walks the rows in order; for each row the n columns are forked
// across workers and joined before moving on.
func mulColumns(ad, bd, cd []int64, n int, o Options) time.Duration {
	cfg := o.forConfig()

	start := time.Now()
	for i := 0; i < n; i++ {
		row := i
		parallel.For(n, func(j int) {
			cd[row*n+j] = dot(ad, bd, n, row, j, 0, n)
		}, cfg)
	}

	return time.Since(start)
}

// mulInner forks the columns of each row and additionally splits every dot
// product over k. Partial sums of one cell meet in an atomic counter, so the
// addition order varies between runs while the integer total does not.
func mulInner(ad, bd, cd []int64, n int, o Options) time.Duration {
	cfg := o.forConfig()

	start := time.Now()
	for i := 0; i < n; i++ {
		row := i
		parallel.For(n, func(j int) {
			var acc atomic.Int64
			parallel.ForRange(n, func(lo, hi int) {
				acc.Add(dot(ad, bd, n, row, j, lo, hi))
			}, cfg)
			cd[row*n+j] = acc.Load()
		}, cfg)
	}

	return time.Since(start)
}

// mulTiled cuts the output into tile×tile blocks and hands each block to the
// pool. Inside a block the loops run i → k → j so that B is read row-wise.
// Partial sums build up in a task-local row buffer, and each output cell is
// stored once, by the task that owns its block.
func mulTiled(ad, bd, cd []int64, n int, o Options) time.Duration {
	t := o.tile
	tilesPerSide := ceilDiv(n, t)
	pool := parallel.NewPool(poolSize(o.workers, tilesPerSide*tilesPerSide))
	defer pool.Close()

	start := time.Now()
	for bi := 0; bi < n; bi += t {
		for bj := 0; bj < n; bj += t {
			i0, i1 := bi, min(bi+t, n)
			j0, j1 := bj, min(bj+t, n)
			pool.Submit(func() {
				var (
					i, j, k int
					aik     int64
				)
				acc := make([]int64, j1-j0)
				for i = i0; i < i1; i++ {
					clear(acc)
					for k = 0; k < n; k++ {
						aik = ad[i*n+k]
						if aik == 0 {
							continue
						}
						brow := bd[k*n+j0 : k*n+j1]
						for j = range brow {
							acc[j] += aik * brow[j]
						}
					}
					copy(cd[i*n+j0:i*n+j1], acc)
				}
			})
		}
	}
	pool.Wait()

	return time.Since(start)
}
