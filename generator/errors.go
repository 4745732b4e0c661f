// SPDX-License-Identifier: MIT
// Package: matbench/generator
//
// errors.go - sentinel errors for the generator package.
// Callers MUST use errors.Is(err, ErrX) to branch on semantics.

package generator

import (
	"errors"
	"fmt"
)

// ErrNeedRandSource indicates that a Generator without an RNG was asked to draw.
// Only reachable through a zero-value Generator; New always installs one.
var ErrNeedRandSource = errors.New("generator: rng is required")

// generatorErrorf attaches a method tag to err while keeping it matchable.
func generatorErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
