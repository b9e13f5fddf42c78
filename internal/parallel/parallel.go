// Package parallel provides a small helper for splitting row-oriented work
// across the available CPUs.
package parallel

import (
	"runtime"
	"sync"
)

// Rows runs fn over the half-open row ranges covering [0, n), splitting the
// rows into at most GOMAXPROCS contiguous chunks executed concurrently.
// It returns once every chunk has completed.
//
// fn must be safe to call concurrently for disjoint ranges. For n <= 0,
// Rows returns immediately; for a single worker it calls fn inline.
func Rows(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
