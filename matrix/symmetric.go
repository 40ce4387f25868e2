// Package matrix: SymmetricDense, a concrete row-major n×n container.
// Elements live in one flat slice for performance and cache friendliness;
// symmetry is a write discipline (SetSym), not a storage trick, so both
// triangles are addressable and row segments stay contiguous.
package matrix

import (
	"fmt"
	"strings"
)

// SymmetricDense is a row-major n×n matrix of float64 values.
// n is the order and data holds n*n elements in row-major layout.
// The wavefront engine writes it through SetSym only, which keeps the
// mirror cells identical bit-for-bit.
type SymmetricDense struct {
	n    int       // matrix order
	data []float64 // flat backing storage, length == n*n
}

// NewSymmetricDense creates an n×n matrix initialized to zeros.
// Stage 1 (Validate): ensure n >= 1.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new SymmetricDense or ErrBadOrder.
// Complexity: O(n²) time and memory.
func NewSymmetricDense(n int) (*SymmetricDense, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}

	return &SymmetricDense{n: n, data: make([]float64, n*n)}, nil
}

// Order returns the matrix order n.
// Complexity: O(1).
func (m *SymmetricDense) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *SymmetricDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, fmt.Errorf("(%d,%d) of %d×%d: %w", row, col, m.n, m.n, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the backing slice.
// Complexity: O(1).
func (m *SymmetricDense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) only. Most callers want SetSym; Set
// exists for diagonal fills and tests that need single-cell control.
// Complexity: O(1).
func (m *SymmetricDense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// SetSym assigns value v at (row, col) AND (col, row), preserving the
// symmetry invariant with a single bounds check.
// Complexity: O(1).
func (m *SymmetricDense) SetSym(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.data[col*m.n+row] = v

	return nil
}

// RowSegment returns the contiguous slice of row `row`, columns [lo, hi).
// The returned slice aliases the backing storage: callers MUST treat it as
// read-only. hi == lo yields an empty (non-nil) segment.
// Stage 1 (Validate): row in range, 0 <= lo <= hi <= n.
// Stage 2 (Execute): subslice the flat storage.
// Complexity: O(1), zero copies.
func (m *SymmetricDense) RowSegment(row, lo, hi int) ([]float64, error) {
	if row < 0 || row >= m.n {
		return nil, fmt.Errorf("row %d of %d: %w", row, m.n, ErrOutOfRange)
	}
	if lo < 0 || hi > m.n || lo > hi {
		return nil, fmt.Errorf("segment [%d,%d) of row %d: %w", lo, hi, row, ErrBadSegment)
	}
	base := row * m.n

	return m.data[base+lo : base+hi : base+hi], nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *SymmetricDense) Clone() *SymmetricDense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &SymmetricDense{n: m.n, data: cp}
}

// IsSymmetric reports whether every mirror pair holds the exact same
// stored value. Engine output always satisfies this; the check exists for
// tests and external ingestion.
// Complexity: O(n²).
func (m *SymmetricDense) IsSymmetric() bool {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n²) for string construction.
func (m *SymmetricDense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.n+j]))
			if j < m.n-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
