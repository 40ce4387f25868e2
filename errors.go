// Package wavefront: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// engine. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. Context is added with fmt.Errorf("...: %w", ErrX) at
// the boundary; callers still match with errors.Is.
package wavefront

import "errors"

var (
	// ErrBadOrder is returned when the requested matrix order is < 1.
	// Rejected before any allocation or scheduling happens.
	ErrBadOrder = errors.New("wavefront: matrix order must be >= 1")

	// ErrWorkerBudget is returned when the worker budget cannot be split
	// between the two parallelism levels, i.e. fewer than MinWorkers.
	ErrWorkerBudget = errors.New("wavefront: worker budget must be >= 2")

	// ErrChunkCount is returned by Split when the requested chunk count
	// is < 1.
	ErrChunkCount = errors.New("wavefront: chunk count must be >= 1")

	// ErrDimensionMismatch is returned by a Reducer given vectors of
	// unequal length. Correct band bookkeeping makes this impossible, so
	// seeing it means a scheduling defect, not recoverable input; the run
	// aborts.
	ErrDimensionMismatch = errors.New("wavefront: reduction vectors differ in length")

	// ErrBandFailed marks a fatal failure inside one band's fan-out.
	// Later bands depend on full completion of earlier ones, so there is
	// no retry and no partial matrix; the wrapped error names the band
	// and the underlying cause.
	ErrBandFailed = errors.New("wavefront: band computation failed")
)
