// Package wavefront: the pipeline driver.
// State machine: Initializing → Band(1) → … → Band(n-1) → Done, with any
// band failure terminal. Bands run strictly in order; each transition
// re-derives the (Z, D) worker split for the new band index, because the
// optimal split shifts from breadth to depth as bands deepen.
package wavefront

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/wavefront/matrix"
	"github.com/katalvlaran/wavefront/pool"
)

// Initialize allocates an n×n matrix and fills the main diagonal with
// M[i][i] = (i+1)/n in parallel across `workers` range chunks. The fill
// has no cross-element dependency, so any workers >= 1 is valid,
// including a fully sequential 1. Off-diagonal cells are zero.
//
// Stage 1 (Validate): n >= 1, workers >= 1.
// Stage 2 (Execute): chunked parallel fill.
// Complexity: O(n²) allocation, O(n) fill work.
//
// Returns ErrBadOrder when n < 1 and ErrWorkerBudget when workers < 1.
func Initialize(n, workers int) (*matrix.SymmetricDense, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	if workers < 1 {
		return nil, ErrWorkerBudget
	}

	m, err := matrix.NewSymmetricDense(n)
	if err != nil {
		return nil, err
	}

	order := float64(n)
	pool.ParallelFor(workers, n, func(start, end int) {
		for i := start; i < end; i++ {
			// In-range by construction; Set cannot fail here.
			_ = m.Set(i, i, float64(i+1)/order)
		}
	})

	return m, nil
}

// Solve computes the full n×n wavefront matrix with the configured worker
// budget and backend. See SolveContext for the contract.
func Solve(n int, opts ...Option) (*matrix.SymmetricDense, error) {
	return SolveContext(context.Background(), n, opts...)
}

// SolveContext computes the full n×n wavefront matrix.
//
// Stage 1 (Validate): n >= 1 and workers >= MinWorkers, rejected before
// any allocation; ErrBadOrder / ErrWorkerBudget.
// Stage 2 (Initialize): parallel diagonal fill (the band-0 base case).
// Stage 3 (Execute): for k = 1..n-1, re-partition the budget and run the
// band; the band barrier orders every band after all of its predecessors.
// Stage 4 (Finalize): return the fully populated, exactly symmetric
// matrix.
//
// Failure is all-or-nothing: the first band error aborts the run wrapped
// in ErrBandFailed with the band index, and no partial matrix is
// returned — later bands would read garbage from an incomplete one. The
// context cancels between and inside bands; n == 1 yields the diagonal
// alone.
// Complexity: O(n³) work, O(n²) memory.
func SolveContext(ctx context.Context, n int, opts ...Option) (*matrix.SymmetricDense, error) {
	o := gatherOptions(opts...)
	if n < 1 {
		return nil, ErrBadOrder
	}
	if o.workers < MinWorkers {
		return nil, ErrWorkerBudget
	}

	start := time.Now()
	m, err := Initialize(n, o.workers)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("diagonal initialized",
		zap.Int("order", n),
		zap.Int("workers", o.workers))

	for k := 1; k < n; k++ {
		res, err := Partition(o.workers, k, n)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("band start",
			zap.Int("band", k),
			zap.Int("entries", n-k),
			zap.Int("entryWorkers", res.Z),
			zap.Int("reductionWorkers", res.D))

		if err = runBand(ctx, m, k, res, o.newReducer(res.D)); err != nil {
			o.logger.Error("band failed", zap.Int("band", k), zap.Error(err))

			return nil, fmt.Errorf("%w: band %d: %w", ErrBandFailed, k, err)
		}
	}

	o.logger.Info("matrix complete",
		zap.Int("order", n),
		zap.Int("workers", o.workers),
		zap.Duration("elapsed", time.Since(start)))

	return m, nil
}
