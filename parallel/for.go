package parallel

import "sync"

// ForRange splits [0, n) into at most cfg.Workers contiguous chunks of at
// least cfg.MinChunk indices and calls fn(lo, hi) for each chunk on its own
// goroutine. It returns once every chunk has finished.
//
// At most n goroutines are started whatever cfg.Workers says. With a single
// chunk the call runs inline on the caller's goroutine.
func ForRange(n int, fn func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	cfg = cfg.normalize()
	workers := min(cfg.Workers, n)

	chunk := max((n+workers-1)/workers, cfg.MinChunk)
	if chunk >= n {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// For executes fn(i) for every i in [0, n), split as in ForRange.
func For(n int, fn func(i int), cfg Config) {
	ForRange(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			fn(i)
		}
	}, cfg)
}
