// Package wavefront is an in-memory engine for dense symmetric matrices
// built band-by-band along anti-diagonals, with two-level parallelism.
//
// 🚀 What is wavefront?
//
//	A small, focused library that computes an N×N symmetric matrix whose
//	off-diagonal bands depend on every previously completed band:
//		• Strict ordering across bands (the "wavefront" sweep)
//		• Full parallelism across the entries of one band
//		• Full parallelism inside each entry's dot-product reduction
//		• Per-band re-partitioning of a fixed worker budget between
//		  the two parallelism levels
//
// ✨ Why choose wavefront?
//
//   - Deterministic – fixed (N, W) always reproduces the same bits
//   - Explicit ownership – no matrix lock, disjoint writes per band
//   - Pluggable backends – parallel and sequential entry reducers
//     behind one small interface
//   - Pure Go – no cgo, portable across platforms
//
// The engine itself lives in this package; two subpackages carry the
// supporting pieces:
//
//	matrix/ — symmetric dense storage + fixed-point text output
//	pool/   — structured parallel-for building blocks
//	cmd/    — the wavesolve command-line front end
//
// Quick start:
//
//	m, err := wavefront.Solve(512, wavefront.WithWorkers(8))
//	if err != nil {
//		// handle ErrBadOrder / ErrWorkerBudget / ErrBandFailed
//	}
//	_ = matrix.Save("matrix.txt", m)
//
// See examples/ for runnable walkthroughs.
package wavefront
