// Package parallel provides the fork-join primitives used by the parallel
// multiplier: a range splitter (For, ForRange) and a fixed-size worker pool
// (Pool). Every entry point blocks until all submitted work has completed.
//
// Work items must write disjoint memory or synchronize on their own; the
// package adds no locking around user callbacks. A panic in a callback is not
// recovered and terminates the process.
package parallel
