// SPDX-License-Identifier: MIT

// Package multiply computes C = A·B for square integer matrices and times it.
//
// 🚀 Strategies
//
//	Sequential      : i → j → k triple loop on the caller's goroutine.
//	StrategyRows    : rows handed to a worker pool; each cell has a private
//	                  accumulator. Default; no shared mutable state.
//	StrategyColumns : for each row, the n column cells are forked across
//	                  workers and joined before the next row.
//	StrategyInner   : StrategyColumns plus a second split of every dot
//	                  product; partial sums meet in an atomic counter. Kept
//	                  to measure what that contention costs.
//	StrategyTiled   : the output is cut into tile×tile blocks handed to a
//	                  worker pool.
//
// ⏱ Timing
//
//	The clock starts after the result has been allocated and zeroed (and,
//	for pooled strategies, after the pool is up) and stops once every cell
//	is written. Parallel calls are synchronous: all work has joined before
//	they return.
//
// Every strategy yields the same product as Sequential, cell for cell.
//
// Complexity: O(n³) multiply-adds for every strategy.
package multiply
