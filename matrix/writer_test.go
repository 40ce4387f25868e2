package matrix_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavefront/matrix"
)

// TestFprint_GoldenLayout pins the frozen text format: six decimals, a
// trailing space after every value, newline after every row.
func TestFprint_GoldenLayout(t *testing.T) {
	m, err := matrix.NewSymmetricDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0.25))
	require.NoError(t, m.SetSym(0, 1, 0.5))
	require.NoError(t, m.Set(1, 1, 1))

	var sb strings.Builder
	require.NoError(t, matrix.Fprint(&sb, m))
	assert.Equal(t, "0.250000 0.500000 \n0.500000 1.000000 \n", sb.String())
}

// TestFprint_Rounding verifies fixed-point rounding at the sixth decimal.
func TestFprint_Rounding(t *testing.T) {
	m, err := matrix.NewSymmetricDense(1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.23456789))

	var sb strings.Builder
	require.NoError(t, matrix.Fprint(&sb, m))
	assert.Equal(t, "1.234568 \n", sb.String())
}

// TestFprint_NilMatrix verifies the nil guard.
func TestFprint_NilMatrix(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, matrix.Fprint(&sb, nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.Save("unused", nil), matrix.ErrNilMatrix)
}

// TestSave_RoundTrip writes a matrix to disk and checks the exact bytes.
func TestSave_RoundTrip(t *testing.T) {
	m, err := matrix.NewSymmetricDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0.1))
	require.NoError(t, m.Set(1, 1, 0.2))

	path := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, matrix.Save(path, m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.100000 0.000000 \n0.000000 0.200000 \n", string(raw))
}

// TestSave_BadPath surfaces filesystem errors instead of swallowing them.
func TestSave_BadPath(t *testing.T) {
	m, err := matrix.NewSymmetricDense(1)
	require.NoError(t, err)

	err = matrix.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "m.txt"), m)
	assert.Error(t, err)
}
