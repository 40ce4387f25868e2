// Package wavefront: public types and functional configuration.
// Options follow the usual pattern: documented defaults, WithX setters,
// and an internal gather step that resolves the effective configuration.
package wavefront

import (
	"runtime"

	"go.uber.org/zap"
)

// MinWorkers is the smallest worker budget the engine accepts: one worker
// for the band level and one for the reduction level.
const MinWorkers = 2

// Resources is a worker-budget split for one band: Z workers drive
// concurrent entries, D workers drive the reduction inside each entry.
// Partition always yields Z + D == W with Z >= 1 and D >= 1.
type Resources struct {
	Z int // entry-level workers (how many entries run at once)
	D int // reduction-level workers (how fast each entry reduces)
}

// Reducer computes one matrix entry from two equal-length sub-vectors.
// Implementations must be safe for concurrent use: one Reducer instance
// serves every entry of a band.
//
// The engine ships two backends, ParallelReducer and SequentialReducer;
// alternative backends (vectorized, cached, remote) plug in through the
// same contract via WithReducer.
type Reducer interface {
	// Reduce returns the entry value for the sub-vector pair (v1, v2),
	// or ErrDimensionMismatch when their lengths differ.
	Reduce(v1, v2 []float64) (float64, error)
}

// ReducerFactory builds the Reducer for a band, given that band's
// reduction-worker count D.
type ReducerFactory func(d int) Reducer

// Option mutates the engine configuration. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Zero value is never used directly; DefaultOptions is the single
// source of truth for defaults.
type Options struct {
	workers    int            // total worker budget W
	newReducer ReducerFactory // backend selection, per band
	logger     *zap.Logger    // progress sink, Nop by default
}

// DefaultOptions returns the documented defaults:
//   - workers: GOMAXPROCS, floored at MinWorkers
//   - backend: ParallelReducer
//   - logger:  zap.NewNop()
func DefaultOptions() Options {
	w := runtime.GOMAXPROCS(0)
	if w < MinWorkers {
		w = MinWorkers
	}

	return Options{
		workers:    w,
		newReducer: func(d int) Reducer { return NewParallelReducer(d) },
		logger:     zap.NewNop(),
	}
}

// WithWorkers sets the total worker budget W. Values below MinWorkers are
// stored as-is and rejected by Solve with ErrWorkerBudget, so the mistake
// surfaces as a configuration error rather than a panic.
func WithWorkers(w int) Option {
	return func(o *Options) { o.workers = w }
}

// WithReducer selects the entry-computation backend. The factory is called
// once per band with that band's reduction-worker count.
func WithReducer(f ReducerFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.newReducer = f
		}
	}
}

// WithSequential selects the sequential baseline backend: every entry is
// reduced by a single pass regardless of D. Band-level parallelism still
// applies. Useful as a reference and for small vectors where fan-out
// overhead dominates.
func WithSequential() Option {
	return func(o *Options) {
		o.newReducer = func(int) Reducer { return SequentialReducer{} }
	}
}

// WithLogger injects a structured progress sink. The engine logs band
// transitions at Debug and the end-of-run summary at Info; a nil logger
// restores the default no-op sink.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions resolves the effective configuration.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
