package wavefront

// Partition splits the worker budget w between the two parallelism levels
// for band k of an n×n matrix, returning Resources{Z, D} with Z + D == w.
//
// Policy:
//   - k < w: reduction work per entry is smaller than the pool, so the
//     budget splits evenly. D = w/2 (integer division); with odd w the
//     spare worker goes to Z, since early bands have many entries and few
//     reduction elements.
//   - k >= w: reduction workers scale up with how much larger k is than
//     the pool: D = trunc(w/2 + (w/2)·(k-1)/k), Z = w - D. As k grows
//     the per-entry reduction gets more expensive while the entry count
//     n-k shrinks, so the budget shifts from breadth to depth. The
//     truncation rule is float64 conversion toward zero, computed with
//     integer division w/2 first; since w/2 <= D <= 2·(w/2)-1 <= w-1,
//     both Z >= 1 and D >= 1 hold without clamping, and D is
//     non-decreasing in k.
//
// Stage 1 (Validate): w >= MinWorkers, k >= 1; n is part of the contract
// for forward compatibility of the policy but does not affect the current
// split.
// Stage 2 (Execute): apply the branch above.
// Complexity: O(1).
//
// Returns ErrWorkerBudget when w < MinWorkers and ErrBadOrder when k < 1
// or n < 1.
func Partition(w, k, n int) (Resources, error) {
	if w < MinWorkers {
		return Resources{}, ErrWorkerBudget
	}
	if k < 1 || n < 1 {
		return Resources{}, ErrBadOrder
	}

	half := w / 2
	var d int
	if k < w {
		d = half
	} else {
		d = int(float64(half) + float64(half)*float64(k-1)/float64(k))
	}

	return Resources{Z: w - d, D: d}, nil
}
