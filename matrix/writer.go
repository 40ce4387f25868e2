// Package matrix: fixed-point text output for finished matrices.
// The format is row-major, six decimal places, one trailing space after
// every value, newline after every row. Runs that need file compatibility
// with earlier tooling depend on this exact layout, so it is frozen here
// and pinned by golden tests.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Fprint writes m to w in the frozen six-decimal layout.
// Stage 1 (Validate): reject a nil matrix.
// Stage 2 (Execute): stream rows through a buffered writer.
// Stage 3 (Finalize): flush and surface the first I/O error.
// Complexity: O(n²).
func Fprint(w io.Writer, m *SymmetricDense) error {
	if m == nil {
		return ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if _, err := fmt.Fprintf(bw, "%.6f ", m.data[i*m.n+j]); err != nil {
				return fmt.Errorf("matrix: write row %d: %w", i, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("matrix: write row %d: %w", i, err)
		}
	}

	return bw.Flush()
}

// Save writes m to the file at path, creating or truncating it.
// Close errors are reported so short writes are never silently dropped.
func Save(path string, m *SymmetricDense) error {
	if m == nil {
		return ErrNilMatrix
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrix: save: %w", err)
	}
	if err = Fprint(f, m); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
