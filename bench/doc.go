// SPDX-License-Identifier: MIT

// Package bench drives one benchmark run: it generates two random n×n
// operands, multiplies them sequentially and then in parallel, and reports
// the wall-clock time of each multiplication.
//
// Only the multiply loops are timed. Generation, result allocation and
// worker start-up happen outside the measured interval.
//
// The report format is fixed:
//
//	Time by Sequential : <seconds>s
//	Time by Parallel : <seconds>s
//
// Result matrices are never printed.
package bench
