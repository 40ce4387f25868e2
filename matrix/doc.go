// Package matrix provides the dense symmetric storage used by the
// wavefront engine, plus the fixed-point text codec for finished matrices.
//
// 🚀 What is matrix?
//
//	A row-major, flat-slice n×n container specialized for symmetric data:
//		• SetSym writes both mirror cells, so At(i,j) == At(j,i) bit-for-bit
//		• RowSegment exposes contiguous read-only views of completed rows
//		• At/Set return sentinel errors, never panic, on bad indices
//
// ✨ Key features:
//
//   - Flat backing storage for cache friendliness (one allocation)
//   - Zero-copy row segments for reduction inputs
//   - Six-decimal fixed-point writer compatible with prior runs
//     (Fprint / Save)
//
// ⚙️ Usage:
//
//	m, err := matrix.NewSymmetricDense(4)
//	if err != nil { ... }
//	_ = m.SetSym(0, 3, 1.154813)
//	v, _ := m.At(3, 0) // 1.154813
//	_ = matrix.Save("matrix.txt", m)
//
// All errors are package sentinels matched with errors.Is.
package matrix
