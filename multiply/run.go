// SPDX-License-Identifier: MIT

package multiply

import (
	"strings"

	"github.com/katalvlaran/matbench/matrix"
)

const opRun = "Run"

// Run dispatches by name: NameSequential runs Sequential, any Strategy name
// runs Parallel with that strategy (overriding a WithStrategy in opts).
// Names are matched case-insensitively, ignoring surrounding space.
// Unknown names return ErrUnknownStrategy.
func Run(name string, a, b *matrix.Dense, opts ...Option) (Result, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == NameSequential {
		return Sequential(a, b)
	}
	s, err := ParseStrategy(name)
	if err != nil {
		return Result{}, multiplyErrorf(opRun, err)
	}

	return Parallel(a, b, append(append([]Option(nil), opts...), WithStrategy(s))...)
}
