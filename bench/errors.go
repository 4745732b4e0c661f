// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
)

// Stage names attached to wrapped errors.
const (
	StageGenerate   = "generate"
	StageSequential = "sequential"
	StageParallel   = "parallel"
)

var (
	// ErrBadDimension is returned when Config.N is negative.
	ErrBadDimension = errors.New("bench: dimension must be >= 0")

	// ErrBadBound is returned when Config.Bound is negative.
	ErrBadBound = errors.New("bench: bound must be >= 0")

	// ErrBadWorkers is returned when Config.Workers is negative.
	ErrBadWorkers = errors.New("bench: workers must be >= 0")

	// ErrBadTile is returned when Config.Tile is negative.
	ErrBadTile = errors.New("bench: tile must be >= 0")

	// ErrOverflowRisk is returned when n·(bound-1)² does not fit in int64,
	// so a product cell could wrap around.
	ErrOverflowRisk = errors.New("bench: dimension and bound may overflow int64")
)

// benchErrorf tags err with the stage that failed.
func benchErrorf(stage string, err error) error {
	return fmt.Errorf("bench: %s: %w", stage, err)
}
