package wavefront

// Split partitions v into exactly d contiguous, non-overlapping chunks
// whose in-order concatenation reproduces v. The first len(v)%d chunks
// carry len(v)/d+1 elements, the rest len(v)/d; when d > len(v) the tail
// chunks are empty, which is a valid output, not an error. Chunks are
// subslices of v (no copies) and the boundaries are deterministic for a
// given (len(v), d).
//
// Stage 1 (Validate): d >= 1.
// Stage 2 (Execute): walk the base/remainder size schedule.
// Complexity: O(d) time, O(d) slice headers, zero element copies.
//
// Returns ErrChunkCount when d < 1.
func Split(v []float64, d int) ([][]float64, error) {
	if d < 1 {
		return nil, ErrChunkCount
	}

	base := len(v) / d
	rem := len(v) % d

	chunks := make([][]float64, d)
	var start int
	for i := 0; i < d; i++ {
		size := base
		if i < rem {
			size++
		}
		chunks[i] = v[start : start+size : start+size]
		start += size
	}

	return chunks, nil
}
