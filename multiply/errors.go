// SPDX-License-Identifier: MIT
// Package multiply: sentinel errors.
// Operand problems surface the matrix sentinels (ErrNilMatrix,
// ErrDimensionMismatch) wrapped with the strategy name.

package multiply

import (
	"errors"
	"fmt"
)

// ErrUnknownStrategy is returned when a strategy name is not recognised.
var ErrUnknownStrategy = errors.New("multiply: unknown strategy")

// multiplyErrorf tags err with the operation that failed.
func multiplyErrorf(op string, err error) error {
	return fmt.Errorf("multiply.%s: %w", op, err)
}
