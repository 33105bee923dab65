// Package parallel splits index ranges across goroutines.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/YuminosukeSato/tsml/pkg/errors"
)

// Workers resolves an n_jobs style setting: -1 (or any negative value) means
// one worker per CPU, 0 means 1.
func Workers(nJobs int) int {
	switch {
	case nJobs < 0:
		return runtime.NumCPU()
	case nJobs == 0:
		return 1
	default:
		return nJobs
	}
}

// chunks returns the [start, end) ranges that split items across at most
// workers goroutines.
func chunks(items, workers int) [][2]int {
	if workers > items {
		workers = items
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (items + workers - 1) / workers

	ranges := make([][2]int, 0, workers)
	for start := 0; start < items; start += chunkSize {
		ranges = append(ranges, [2]int{start, min(start+chunkSize, items)})
	}
	return ranges
}

// Parallelize divides items into one chunk per CPU core and calls fn for
// each [start, end) range concurrently.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, r := range chunks(items, runtime.NumCPU()) {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(r[0], r[1])
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items does not exceed
// threshold, and through Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ForEach splits items into at most workers contiguous chunks and runs fn on
// each. The first error is returned after every chunk has finished; a
// panicking chunk is reported as *errors.PanicError. With one worker fn runs
// on the calling goroutine.
func ForEach(items, workers int, fn func(start, end int) error) error {
	if items <= 0 {
		return nil
	}
	if workers <= 1 {
		return errors.SafeExecute("parallel.ForEach", func() error {
			return fn(0, items)
		})
	}

	var g errgroup.Group
	for _, r := range chunks(items, workers) {
		start, end := r[0], r[1]
		g.Go(func() error {
			return errors.SafeExecute("parallel.ForEach", func() error {
				return fn(start, end)
			})
		})
	}
	return g.Wait()
}
