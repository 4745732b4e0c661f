// SPDX-License-Identifier: MIT
// Package: matbench/generator
//
// options.go - functional options for the generator package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Drawing functions themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package generator

import (
	"math/rand"
	"time"
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultBound is the exclusive upper bound of generated values.
	DefaultBound int64 = 50

	// defaultRNGSeed is the fixed seed used when callers pass WithSeed(0).
	defaultRNGSeed int64 = 1
)

// config aggregates all generator knobs.
type config struct {
	rng         *rand.Rand // nil until resolved in newConfig
	seed        int64      // seed that produced rng; 0 when WithRand supplied rng
	seeded      bool       // true once WithSeed/WithRand ran
	bound       int64      // exclusive upper bound, >= 1
	independent bool       // draw A and B of a Pair from derived streams
}

// Option customizes a Generator before its first draw.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// seed == 0 is mapped to a fixed non-zero default so that the zero value still
// reproduces.
func WithSeed(seed int64) Option {
	return func(c *config) {
		s := seed
		if s == 0 {
			s = defaultRNGSeed
		}
		c.rng = rngFromSeed(s)
		c.seed = s
		c.seeded = true
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed = 0
		c.seeded = true
	}
}

// WithBound sets the exclusive upper bound of generated values.
// Panics if bound < 1 (the range [0,bound) would be empty).
func WithBound(bound int64) Option {
	if bound < 1 {
		panic("generator: WithBound(bound<1)")
	}
	return func(c *config) {
		c.bound = bound
	}
}

// WithIndependentStreams makes Pair draw A and B from two derived streams
// instead of one shared stream. Both remain reproducible from the seed.
func WithIndependentStreams() Option {
	return func(c *config) {
		c.independent = true
	}
}

// newConfig resolves options in order (last wins). Without WithSeed/WithRand
// the seed is taken from the clock once, and recorded so the run can be replayed.
func newConfig(opts ...Option) config {
	cfg := config{bound: DefaultBound}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = time.Now().UnixNano()
		if cfg.seed == 0 {
			cfg.seed = defaultRNGSeed
		}
		cfg.rng = rngFromSeed(cfg.seed)
	}

	return cfg
}
