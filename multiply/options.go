// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the parallel multiplier.
//
// Design goals:
//   - Deterministic results: options change scheduling, never the product.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); Parallel itself never panics on user input.

package multiply

import (
	"fmt"
	"runtime"
	"strings"
)

// Strategy selects how Parallel partitions the work.
type Strategy string

const (
	// StrategyRows partitions the output by row strips (default).
	StrategyRows Strategy = "rows"

	// StrategyColumns forks the columns of each row, one row at a time.
	StrategyColumns Strategy = "columns"

	// StrategyInner forks columns and also splits each dot product,
	// accumulating partial sums atomically.
	StrategyInner Strategy = "inner"

	// StrategyTiled partitions the output into square tiles.
	StrategyTiled Strategy = "tiled"
)

// NameSequential labels results produced by Sequential.
const NameSequential = "sequential"

// Defaults (single source of truth).
const (
	DefaultStrategy = StrategyRows
	DefaultTileSize = 32
	DefaultMinChunk = 1
)

// Strategies lists every parallel strategy in a stable order.
func Strategies() []Strategy {
	return []Strategy{StrategyRows, StrategyColumns, StrategyInner, StrategyTiled}
}

// ParseStrategy maps a case-insensitive name onto a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	if !s.valid() {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
	return s, nil
}

func (s Strategy) valid() bool {
	switch s {
	case StrategyRows, StrategyColumns, StrategyInner, StrategyTiled:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return string(s) }

// ---------- Internal panic messages ----------

const (
	panicWorkers  = "multiply: WithWorkers: workers must be >= 1"
	panicStrategy = "multiply: WithStrategy: unknown strategy"
	panicTile     = "multiply: WithTileSize: tile must be >= 1"
	panicMinChunk = "multiply: WithMinChunk: chunk must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers  int      // >= 1; runtime.GOMAXPROCS(0)
	strategy Strategy // DefaultStrategy
	tile     int      // DefaultTileSize
	minChunk int      // DefaultMinChunk
}

// Workers returns the resolved worker count.
func (o Options) Workers() int { return o.workers }

// Strategy returns the resolved strategy.
func (o Options) Strategy() Strategy { return o.strategy }

// WithWorkers sets the number of worker goroutines.
func WithWorkers(workers int) Option {
	if workers < 1 {
		panic(panicWorkers)
	}
	return func(o *Options) { o.workers = workers }
}

// WithStrategy selects the partitioning strategy.
func WithStrategy(s Strategy) Option {
	if !s.valid() {
		panic(panicStrategy)
	}
	return func(o *Options) { o.strategy = s }
}

// WithTileSize sets the tile edge used by StrategyTiled.
func WithTileSize(tile int) Option {
	if tile < 1 {
		panic(panicTile)
	}
	return func(o *Options) { o.tile = tile }
}

// WithMinChunk sets the smallest index range one task receives: rows per
// strip for StrategyRows, columns (and k-terms) per goroutine for
// StrategyColumns and StrategyInner.
func WithMinChunk(chunk int) Option {
	if chunk < 1 {
		panic(panicMinChunk)
	}
	return func(o *Options) { o.minChunk = chunk }
}

// gatherOptions applies opts over the defaults, last one wins.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:  runtime.GOMAXPROCS(0),
		strategy: DefaultStrategy,
		tile:     DefaultTileSize,
		minChunk: DefaultMinChunk,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
