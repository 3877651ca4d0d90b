// SPDX-License-Identifier: MIT

// Package parallel - range partitioning and bounded fan-out.
//
// Complexity quicksheet:
//   - Chunks: O(workers); For: O(n) callback invocations on ≤ workers goroutines.

package parallel

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Range is an inclusive index interval [Low, High].
type Range struct {
	Low, High int
}

// Len returns the number of indices in the range (0 when High < Low).
func (r Range) Len() int {
	if r.High < r.Low {
		return 0
	}

	return r.High - r.Low + 1
}

// Chunks partitions [low, high] into at most `workers` contiguous ranges.
// MAIN DESCRIPTION:
//   - Covering, non-overlapping, ascending; lengths differ by at most one.
//
// Behavior highlights:
//   - Empty range or workers < 1 yields nil.
//   - Never returns more chunks than indices.
//
// Complexity:
//   - Time O(workers), Space O(workers).
func Chunks(low, high, workers int) []Range {
	n := high - low + 1
	if n <= 0 || workers < 1 {
		return nil
	}
	if workers > n {
		workers = n
	}
	base, extra := n/workers, n%workers

	out := make([]Range, 0, workers)
	start := low
	var k, size int
	for k = 0; k < workers; k++ {
		size = base
		if k < extra { // spread the remainder over the first chunks
			size++
		}
		out = append(out, Range{Low: start, High: start + size - 1})
		start += size
	}

	return out
}

// For calls fn exactly once for every index in [low, high] and blocks until all calls return.
// MAIN DESCRIPTION:
//   - Bounded fan-out: one goroutine per chunk, at most `workers` running at once.
//
// Implementation:
//   - Stage 1: validate inputs; partition with Chunks.
//   - Stage 2: a single chunk runs inline; otherwise errgroup with SetLimit(workers).
//   - Stage 3: gather per-chunk failures (each chunk owns its slot, no locking) into a *TaskError.
//
// Behavior highlights:
//   - Fail-together: failures never short-circuit other indices.
//   - Panics inside fn are recovered and reported as failures of that index.
//   - high < low is a no-op.
//
// Errors:
//   - ErrNilFunc, ErrInvalidWorkers; *TaskError (matches ErrTaskFailed) when any index fails.
//
// Complexity:
//   - Time O(n) calls, Space O(workers + failures).
func For(low, high, workers int, fn func(i int) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	if workers < 1 {
		return ErrInvalidWorkers
	}
	chunks := Chunks(low, high, workers)
	if len(chunks) == 0 {
		return nil
	}
	klog.V(4).Infof("parallel: [%d,%d] in %d chunk(s), limit %d", low, high, len(chunks), workers)

	failures := make([][]error, len(chunks))
	if len(chunks) == 1 {
		failures[0] = runChunk(chunks[0], fn)
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for k, r := range chunks {
			g.Go(func() error {
				failures[k] = runChunk(r, fn)
				return nil // collected above; Wait must not short-circuit
			})
		}
		_ = g.Wait()
	}

	var causes []error
	for _, f := range failures {
		causes = append(causes, f...)
	}
	if len(causes) == 0 {
		return nil
	}

	return &TaskError{Causes: causes}
}

// runChunk visits r in ascending order and returns the failures it saw.
func runChunk(r Range, fn func(i int) error) []error {
	var errs []error
	for i := r.Low; i <= r.High; i++ {
		if err := call(i, fn); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

// call runs fn(i), turning a panic into an error tagged with the index.
func call(i int, fn func(i int) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("index %d: panic: %v", i, p)
		}
	}()
	if e := fn(i); e != nil {
		return errors.Wrapf(e, "index %d", i)
	}

	return nil
}
