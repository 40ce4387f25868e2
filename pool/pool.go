package pool

import (
	"sync"
	"sync/atomic"
)

// ParallelFor executes fn over [0, n) split into at most `workers`
// contiguous ranges, one goroutine per range, and blocks until all ranges
// complete. fn receives half-open bounds [start, end).
//
// Stage 1 (Validate): n <= 0 is a no-op; workers <= 1 or a single range
// runs sequentially on the calling goroutine.
// Stage 2 (Execute): spawn one goroutine per non-empty range.
// Stage 3 (Finalize): WaitGroup barrier; all writes made by fn happen
// before ParallelFor returns.
// Complexity: O(n) total work, O(workers) goroutines.
func ParallelFor(workers, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)

		return
	}

	// Ceil division so the ranges cover every index.
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	var start int
	for start = 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelForEach executes fn(i) for every i in [0, n) using `workers`
// goroutines that grab indices from a shared atomic counter. Use it when
// per-item cost varies and static chunking would leave workers idle.
// Blocks until every index has been processed.
// Complexity: O(n) total work, O(workers) goroutines, one atomic add per item.
func ParallelForEach(workers, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
