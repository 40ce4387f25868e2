// Package pool provides structured parallel-for building blocks: bounded
// fan-out over an index range with a fan-in barrier, and nothing else.
//
// 🚀 What is pool?
//
//	Two small primitives for data-parallel loops with no cross-iteration
//	dependency:
//		• ParallelFor    — contiguous chunk per worker, lowest overhead
//		• ParallelForEach — atomic work-stealing, one index per grab,
//		  better balance when per-item cost varies
//
// Both block until every iteration completed; returning from either is a
// full synchronization point, so writes made inside the loop body are
// visible to the caller afterwards.
//
// ✨ Design notes:
//
//   - No persistent workers: goroutines live for one call. The wavefront
//     engine rebuilds its worker split every band, so pool membership is
//     rebuilt per use rather than kept in long-lived actors.
//   - workers <= 1 (or fewer items than workers demand) degrades to a
//     plain sequential loop with zero goroutines.
//
// ⚙️ Usage:
//
//	pool.ParallelFor(8, n, func(start, end int) {
//		for i := start; i < end; i++ {
//			diag[i] = float64(i+1) / float64(n)
//		}
//	})
package pool
