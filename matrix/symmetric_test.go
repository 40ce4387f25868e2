package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/matrix"
)

// TestNewSymmetricDense_BadOrder verifies that orders below 1 are
// rejected with ErrBadOrder before allocation.
func TestNewSymmetricDense_BadOrder(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := matrix.NewSymmetricDense(n)
		assert.ErrorIs(t, err, matrix.ErrBadOrder, "n=%d must be rejected", n)
	}
}

// TestSymmetricDense_AtSetBounds verifies that every indexer returns
// ErrOutOfRange instead of panicking on bad coordinates.
func TestSymmetricDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewSymmetricDense(3)
	require.NoError(t, err)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err = m.At(rc[0], rc[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		assert.ErrorIs(t, m.Set(rc[0], rc[1], 1), matrix.ErrOutOfRange, "Set(%d,%d)", rc[0], rc[1])
		assert.ErrorIs(t, m.SetSym(rc[0], rc[1], 1), matrix.ErrOutOfRange, "SetSym(%d,%d)", rc[0], rc[1])
	}
}

// TestSymmetricDense_SetSymMirrors verifies that SetSym writes both
// mirror cells with identical bits while Set touches one cell only.
func TestSymmetricDense_SetSymMirrors(t *testing.T) {
	m, err := matrix.NewSymmetricDense(4)
	require.NoError(t, err)

	require.NoError(t, m.SetSym(1, 3, 2.5))
	a, err := m.At(1, 3)
	require.NoError(t, err)
	b, err := m.At(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, a)
	assert.Equal(t, a, b, "mirror cells must hold the same bits")
	assert.True(t, m.IsSymmetric())

	require.NoError(t, m.Set(0, 2, 7))
	assert.False(t, m.IsSymmetric(), "one-sided Set breaks symmetry until mirrored")
}

// TestSymmetricDense_RowSegment verifies segment bounds, aliasing, and
// the empty-segment case.
func TestSymmetricDense_RowSegment(t *testing.T) {
	m, err := matrix.NewSymmetricDense(4)
	require.NoError(t, err)
	for j := 0; j < 4; j++ {
		require.NoError(t, m.Set(2, j, float64(10+j)))
	}

	seg, err := m.RowSegment(2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12}, seg)

	// Segments alias the storage: later writes are visible.
	require.NoError(t, m.Set(2, 1, -1))
	assert.Equal(t, -1.0, seg[0], "segment must be a view, not a copy")

	empty, err := m.RowSegment(0, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, empty, "lo == hi yields an empty segment")

	_, err = m.RowSegment(4, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.RowSegment(0, 3, 2)
	assert.ErrorIs(t, err, matrix.ErrBadSegment)
	_, err = m.RowSegment(0, 0, 5)
	assert.ErrorIs(t, err, matrix.ErrBadSegment)
}

// TestSymmetricDense_Clone verifies deep copies: mutations of the clone
// never reach the original.
func TestSymmetricDense_Clone(t *testing.T) {
	m, err := matrix.NewSymmetricDense(2)
	require.NoError(t, err)
	require.NoError(t, m.SetSym(0, 1, 5))

	cp := m.Clone()
	require.NoError(t, cp.SetSym(0, 1, 9))

	orig, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, orig, "clone mutation must not leak back")
	assert.Equal(t, 2, cp.Order())
}

// TestSymmetricDense_String smoke-tests the debug representation.
func TestSymmetricDense_String(t *testing.T) {
	m, err := matrix.NewSymmetricDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.5))

	assert.Equal(t, "[1.5, 0]\n[0, 0]\n", m.String())
}
