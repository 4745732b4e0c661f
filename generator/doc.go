// SPDX-License-Identifier: MIT

// Package generator fills square integer matrices with pseudo-random values.
//
// Every Generator owns its *rand.Rand; there is no package-level random
// state. A seed reproduces a whole run: Pair draws A completely, then B, from
// one stream in a fixed row-major order.
//
// Usage:
//
//	g := generator.New(generator.WithSeed(42), generator.WithBound(50))
//	a, b, err := g.Pair(n)
//
// Values are drawn uniformly from [0, bound). bound defaults to DefaultBound.
//
// Concurrency:
//   - A Generator is NOT goroutine-safe (math/rand.Rand is not). Use one per
//     goroutine, or derive independent streams with DeriveSeed.
package generator
