// Package wavefront: entry reducers.
// An entry value is the real cube root of the dot product of two
// equal-length sub-vectors. The parallel backend chunks the pair with
// identical boundaries, computes one partial sum per chunk, and combines
// the partials in chunk order, so a fixed (input, D) reproduces the same
// bits regardless of goroutine scheduling.
//
// Cube-root convention: real odd root, so a negative dot product yields a
// negative entry (math.Cbrt semantics).
package wavefront

import (
	"math"

	"github.com/katalvlaran/wavefront/pool"
)

// partialDot sums the elementwise products of one chunk pair.
// Callers guarantee equal chunk lengths.
func partialDot(v1, v2 []float64) float64 {
	var sum float64
	for i := range v1 {
		sum += v1[i] * v2[i]
	}

	return sum
}

// SequentialReducer is the baseline backend: one pass over the pair, no
// goroutines. It anchors correctness tests and serves tiny vectors where
// fan-out overhead would dominate.
type SequentialReducer struct{}

// Reduce computes cbrt(v1 · v2) in a single pass.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: O(len(v1)).
func (SequentialReducer) Reduce(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, ErrDimensionMismatch
	}

	return math.Cbrt(partialDot(v1, v2)), nil
}

// ParallelReducer computes entries with a d-way partial-sum fan-out.
// The zero value is not useful; construct with NewParallelReducer. The
// type is a value and holds no state, so one instance safely serves every
// entry of a band concurrently.
type ParallelReducer struct {
	workers int // chunk count D for this band
}

// NewParallelReducer returns a reducer that splits every pair into d
// chunks. d < 1 is lifted to 1 rather than rejected: the chunk count is
// engine-derived, never user input.
func NewParallelReducer(d int) ParallelReducer {
	if d < 1 {
		d = 1
	}

	return ParallelReducer{workers: d}
}

// Workers returns the chunk count D the reducer fans out to.
func (r ParallelReducer) Workers() int {
	return r.workers
}

// Reduce computes cbrt(v1 · v2) via d independent partial dot products.
// Stage 1 (Validate): equal lengths, else ErrDimensionMismatch.
// Stage 2 (Prepare): Split both vectors; lengths match, so the chunk
// boundaries are identical and chunk pairs stay aligned.
// Stage 3 (Execute): one partial sum per chunk across d workers; the
// fan-in barrier is the only blocking point.
// Stage 4 (Finalize): combine partials in chunk order, take the real
// cube root.
// Complexity: O(len(v1)) work across d goroutines.
func (r ParallelReducer) Reduce(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, ErrDimensionMismatch
	}

	d := r.workers
	if d > len(v1) {
		// At most len(v1) chunks are non-empty; skip spawning for the rest.
		d = len(v1)
	}
	if d <= 1 {
		return math.Cbrt(partialDot(v1, v2)), nil
	}

	chunks1, err := Split(v1, d)
	if err != nil {
		return 0, err
	}
	chunks2, err := Split(v2, d)
	if err != nil {
		return 0, err
	}

	partials := make([]float64, d)
	pool.ParallelForEach(d, d, func(i int) {
		partials[i] = partialDot(chunks1[i], chunks2[i])
	})

	// Chunk-ordered combine keeps the summation order fixed.
	var sum float64
	for _, p := range partials {
		sum += p
	}

	return math.Cbrt(sum), nil
}
