package pyinterp

import (
	"runtime"
	"sync"
)

// forEachChunk partitions [0, n) into contiguous chunks and runs fn on
// each, fanning out across workers goroutines (0 means one per CPU). Each
// worker owns its chunk and writes disjoint output slots, so no
// synchronization beyond the final wait is needed; queries are pure reads
// over the immutable grid. Failed elements are flagged in place by fn and
// never abort their siblings.
func forEachChunk(n, workers int, fn func(lo, hi int)) {
	if n == 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
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
