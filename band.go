// Package wavefront: the band stage.
// One band k holds the n-k entries (m, m+k). Entries of the same band are
// mutually independent: each reads only rows already completed by bands
// < k and writes one disjoint mirror pair, so the matrix itself needs no
// lock. The errgroup Wait is both the fan-in barrier and the memory
// barrier that publishes this band's writes to the next one.
package wavefront

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wavefront/matrix"
)

// entryVectors derives the two reduction inputs for entry (m, m+k):
//
//	v1[i] = M[m][m+i]       — row m,   columns [m, m+k)
//	v2[i] = M[m+i+1][m+k]   — column above the entry, which symmetric
//	                          storage exposes as row m+k, columns [m+1, m+k+1)
//
// Every element belongs to a band < k, so both segments are stable reads.
// The segments alias the matrix storage; reducers must not mutate them.
func entryVectors(m *matrix.SymmetricDense, row, k int) (v1, v2 []float64, err error) {
	if v1, err = m.RowSegment(row, row, row+k); err != nil {
		return nil, nil, err
	}
	if v2, err = m.RowSegment(row+k, row+1, row+k+1); err != nil {
		return nil, nil, err
	}

	return v1, v2, nil
}

// runBand materializes band k: a fan-out of the n-k entry tasks over at
// most res.Z concurrent reducers, then the fan-in barrier. Requires bands
// [1, k) complete. Any entry failure cancels the remaining fan-out and
// surfaces as the band's error; a partially written band is never
// observable because the caller discards the matrix on error.
// Complexity: O((n-k)·k) work, two goroutine levels (Z × D).
func runBand(ctx context.Context, m *matrix.SymmetricDense, k int, res Resources, red Reducer) error {
	n := m.Order()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(res.Z)
	for row := 0; row < n-k; row++ {
		row := row
		g.Go(func() error {
			// Skip queued entries once a sibling has failed.
			if err := ctx.Err(); err != nil {
				return err
			}

			v1, v2, err := entryVectors(m, row, k)
			if err != nil {
				return fmt.Errorf("entry (%d,%d): %w", row, row+k, err)
			}
			val, err := red.Reduce(v1, v2)
			if err != nil {
				return fmt.Errorf("entry (%d,%d): %w", row, row+k, err)
			}

			return m.SetSym(row, row+k, val)
		})
	}

	return g.Wait()
}
