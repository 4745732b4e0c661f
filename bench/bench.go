// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"

	"github.com/katalvlaran/matbench/generator"
	"github.com/katalvlaran/matbench/multiply"
)

// Report holds the outcome of one Run.
type Report struct {
	N          int
	Seed       int64 // seed the operands were drawn from
	Sequential multiply.Result
	Parallel   multiply.Result
}

// Run generates A and B, multiplies them with multiply.Sequential and then
// with multiply.Parallel, and returns both timed results.
//
// Stage 1 (Validate): no negative fields, n·(bound-1)² fits in int64,
// strategy name known.
// Stage 2 (Generate): draw A then B from one seeded stream.
// Stage 3 (Multiply): sequential first, parallel second.
//
// Errors are wrapped with the failing stage; match the sentinels with errors.Is.
func Run(cfg Config) (Report, error) {
	if err := cfg.validate(); err != nil {
		return Report{}, benchErrorf(StageGenerate, err)
	}
	mopts, err := cfg.multiplyOptions()
	if err != nil {
		return Report{}, benchErrorf(StageParallel, err)
	}

	g := generator.New(cfg.generatorOptions()...)
	a, b, err := g.Pair(cfg.N)
	if err != nil {
		return Report{}, benchErrorf(StageGenerate, err)
	}

	seq, err := multiply.Sequential(a, b)
	if err != nil {
		return Report{}, benchErrorf(StageSequential, err)
	}
	par, err := multiply.Parallel(a, b, mopts...)
	if err != nil {
		return Report{}, benchErrorf(StageParallel, err)
	}

	return Report{
		N:          cfg.N,
		Seed:       g.Seed(),
		Sequential: seq,
		Parallel:   par,
	}, nil
}

// WriteTo prints the two timing lines. It implements io.WriterTo.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Time by Sequential : %gs\nTime by Parallel : %gs\n",
		r.Sequential.Seconds(), r.Parallel.Seconds())
	return int64(n), err
}

// Speedup returns sequential time over parallel time, or 0 when the parallel
// time is zero.
func (r Report) Speedup() float64 {
	if r.Parallel.Elapsed <= 0 {
		return 0
	}
	return float64(r.Sequential.Elapsed) / float64(r.Parallel.Elapsed)
}

// Agree reports whether both strategies produced the same product.
func (r Report) Agree() bool {
	return r.Sequential.Product.Equal(r.Parallel.Product)
}
