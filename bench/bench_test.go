// SPDX-License-Identifier: MIT
// Package bench_test covers the end-to-end driver: generation, both
// multiplications and the report format.
package bench_test

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/generator"
	"github.com/katalvlaran/matbench/matrix"
	"github.com/katalvlaran/matbench/multiply"
)

var reportLine = regexp.MustCompile(`^Time by (Sequential|Parallel) : (\S+)s$`)

func TestRun_Defaults(t *testing.T) {
	rep, err := bench.Run(bench.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, bench.DefaultDimension, rep.N)
	assert.NotZero(t, rep.Seed)
	assert.Equal(t, bench.DefaultDimension, rep.Sequential.Product.N())
	assert.Equal(t, bench.DefaultDimension, rep.Parallel.Product.N())
	assert.Equal(t, multiply.NameSequential, rep.Sequential.Strategy)
	assert.Equal(t, multiply.DefaultStrategy.String(), rep.Parallel.Strategy)
	assert.True(t, rep.Agree())
}

func TestRun_ZeroConfig(t *testing.T) {
	rep, err := bench.Run(bench.Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Sequential.Product.N())
	assert.Equal(t, 0, rep.Parallel.Product.N())
	assert.True(t, rep.Agree())
}

func TestRun_AllStrategiesAgree(t *testing.T) {
	for _, s := range multiply.Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			rep, err := bench.Run(bench.Config{N: 23, Seed: 42, Workers: 3, Strategy: s, Tile: 4})
			require.NoError(t, err)
			assert.Equal(t, s.String(), rep.Parallel.Strategy)
			assert.Equal(t, 3, rep.Parallel.Workers)
			assert.True(t, rep.Agree())
		})
	}
}

// TestRun_SeedReplays checks that the recorded seed reproduces the operands.
func TestRun_SeedReplays(t *testing.T) {
	rep, err := bench.Run(bench.Config{N: 6})
	require.NoError(t, err)
	require.NotZero(t, rep.Seed)

	a, b, err := generator.Pair(6, generator.WithSeed(rep.Seed))
	require.NoError(t, err)
	want, err := multiply.Sequential(a, b)
	require.NoError(t, err)
	assert.True(t, want.Product.Equal(rep.Sequential.Product))
}

func TestRun_FixedSeedIsDeterministic(t *testing.T) {
	cfg := bench.Config{N: 15, Seed: 7, Bound: 9}
	r1, err := bench.Run(cfg)
	require.NoError(t, err)
	r2, err := bench.Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(7), r1.Seed)
	assert.True(t, r1.Sequential.Product.Equal(r2.Sequential.Product))
	assert.True(t, r1.Parallel.Product.Equal(r2.Parallel.Product))
}

func TestRun_Errors(t *testing.T) {
	_, err := bench.Run(bench.Config{N: -1})
	require.ErrorIs(t, err, bench.ErrBadDimension)
	assert.Contains(t, err.Error(), bench.StageGenerate)

	_, err = bench.Run(bench.Config{N: 2, Strategy: "diagonal"})
	require.ErrorIs(t, err, multiply.ErrUnknownStrategy)
	assert.Contains(t, err.Error(), bench.StageParallel)
}

// TestRun_RejectsNegativeFields checks every signed field has its sentinel.
func TestRun_RejectsNegativeFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  bench.Config
		want error
	}{
		{"bound", bench.Config{N: 2, Bound: -1}, bench.ErrBadBound},
		{"workers", bench.Config{N: 2, Workers: -4}, bench.ErrBadWorkers},
		{"tile", bench.Config{N: 2, Tile: -8}, bench.ErrBadTile},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bench.Run(tc.cfg)
			require.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), bench.StageGenerate)
		})
	}
}

// TestRun_RejectsOverflowingBound checks that a bound large enough to wrap
// product cells is refused before anything is generated.
func TestRun_RejectsOverflowingBound(t *testing.T) {
	_, err := bench.Run(bench.Config{N: 4, Seed: 1, Bound: 1 << 40})
	require.ErrorIs(t, err, bench.ErrOverflowRisk)
	assert.Contains(t, err.Error(), bench.StageGenerate)

	// A large bound that still fits runs, and no cell goes negative.
	rep, err := bench.Run(bench.Config{N: 4, Seed: 1, Bound: 1 << 30})
	require.NoError(t, err)
	assert.True(t, rep.Agree())
	for _, v := range rep.Sequential.Product.Raw() {
		require.GreaterOrEqual(t, v, int64(0))
	}
}

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		bound   int64
		wantErr bool
	}{
		{"empty matrix", 0, math.MaxInt64, false},
		{"bound one", 1 << 20, 1, false},
		{"default", bench.DefaultDimension, 50, false},
		{"square of bound overflows", 1, 1 << 32, true},
		{"exact fit", 1, 3037000500, false},
		{"n tips it over", 2, 3037000500, true},
		{"large n small bound", 1 << 40, 50, false},
		{"huge n", math.MaxInt, 50, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := bench.CheckRange(tc.n, tc.bound)
			if tc.wantErr {
				require.ErrorIs(t, err, bench.ErrOverflowRisk)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReport_WriteTo(t *testing.T) {
	rep, err := bench.Run(bench.Config{N: 12, Seed: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	for i, label := range []string{"Sequential", "Parallel"} {
		m := reportLine.FindSubmatch(lines[i])
		require.NotNil(t, m, "line %d: %q", i, lines[i])
		assert.Equal(t, label, string(m[1]))
		sec, err := strconv.ParseFloat(string(m[2]), 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sec, 0.0)
	}
}

func TestReport_WriteToFixedDurations(t *testing.T) {
	rep := bench.Report{
		Sequential: multiply.Result{Elapsed: 1500 * time.Millisecond},
		Parallel:   multiply.Result{Elapsed: 250 * time.Microsecond},
	}
	var buf bytes.Buffer
	_, err := rep.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Time by Sequential : 1.5s\nTime by Parallel : 0.00025s\n", buf.String())
}

func TestReport_Speedup(t *testing.T) {
	rep := bench.Report{
		Sequential: multiply.Result{Elapsed: 4 * time.Second},
		Parallel:   multiply.Result{Elapsed: time.Second},
	}
	assert.InDelta(t, 4.0, rep.Speedup(), 1e-9)

	rep.Parallel.Elapsed = 0
	assert.Zero(t, rep.Speedup())
}

func TestReport_AgreeDetectsMismatch(t *testing.T) {
	one, err := matrix.NewDenseFrom([][]int64{{1}})
	require.NoError(t, err)
	two, err := matrix.NewDenseFrom([][]int64{{2}})
	require.NoError(t, err)

	rep := bench.Report{
		Sequential: multiply.Result{Product: one},
		Parallel:   multiply.Result{Product: two},
	}
	assert.False(t, rep.Agree())
}
