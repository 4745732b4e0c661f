package multiply

import (
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// Result is the outcome of one timed multiplication.
type Result struct {
	Strategy string        // NameSequential or a Strategy name
	Workers  int           // goroutines that computed cells (1 for sequential)
	Elapsed  time.Duration // wall clock around the multiply loops only
	Product  *matrix.Dense // freshly allocated n×n product, owned by the caller
}

// Seconds returns Elapsed as floating-point seconds.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }
