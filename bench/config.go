// SPDX-License-Identifier: MIT

package bench

import (
	"math"
	"runtime"

	"github.com/katalvlaran/matbench/generator"
	"github.com/katalvlaran/matbench/multiply"
)

// DefaultDimension is the matrix size used when none is given.
const DefaultDimension = 10

// Config describes one benchmark run. Zero fields take their defaults, except
// N, where 0 is a valid (empty) dimension. Negative fields are rejected.
type Config struct {
	N        int               // matrix dimension, >= 0
	Seed     int64             // 0 = seed from the clock (recorded in Report.Seed)
	Bound    int64             // exclusive value bound; 0 = generator.DefaultBound
	Workers  int               // 0 = runtime.GOMAXPROCS(0)
	Strategy multiply.Strategy // "" = multiply.DefaultStrategy
	Tile     int               // 0 = multiply.DefaultTileSize
}

// DefaultConfig returns the configuration of the classic run: n = 10,
// clock seed, bound 50, row strips on every available CPU.
func DefaultConfig() Config {
	return Config{
		N:        DefaultDimension,
		Bound:    generator.DefaultBound,
		Workers:  runtime.GOMAXPROCS(0),
		Strategy: multiply.DefaultStrategy,
		Tile:     multiply.DefaultTileSize,
	}
}

// validate checks the sign of every field and the int64 range of the product.
func (c Config) validate() error {
	switch {
	case c.N < 0:
		return ErrBadDimension
	case c.Bound < 0:
		return ErrBadBound
	case c.Workers < 0:
		return ErrBadWorkers
	case c.Tile < 0:
		return ErrBadTile
	}
	bound := c.Bound
	if bound == 0 {
		bound = generator.DefaultBound
	}
	return CheckRange(c.N, bound)
}

// CheckRange reports ErrOverflowRisk when the largest possible product cell,
// n·(bound-1)², does not fit in int64. n and bound must be non-negative.
//
// Complexity: O(1).
func CheckRange(n int, bound int64) error {
	m := bound - 1
	if n == 0 || m <= 0 {
		return nil
	}
	if m > math.MaxInt64/m {
		return ErrOverflowRisk
	}
	if int64(n) > math.MaxInt64/(m*m) {
		return ErrOverflowRisk
	}
	return nil
}

// generatorOptions maps c onto generator options.
func (c Config) generatorOptions() []generator.Option {
	var opts []generator.Option
	if c.Seed != 0 {
		opts = append(opts, generator.WithSeed(c.Seed))
	}
	if c.Bound > 0 {
		opts = append(opts, generator.WithBound(c.Bound))
	}
	return opts
}

// multiplyOptions maps c onto multiply options. The strategy is validated
// first so a bad name surfaces as an error rather than a panic.
func (c Config) multiplyOptions() ([]multiply.Option, error) {
	var opts []multiply.Option
	if c.Strategy != "" {
		s, err := multiply.ParseStrategy(string(c.Strategy))
		if err != nil {
			return nil, err
		}
		opts = append(opts, multiply.WithStrategy(s))
	}
	if c.Workers > 0 {
		opts = append(opts, multiply.WithWorkers(c.Workers))
	}
	if c.Tile > 0 {
		opts = append(opts, multiply.WithTileSize(c.Tile))
	}
	return opts, nil
}
