package runsearch

// LowBatch resolves the low-bound index of every target in a sorted batch
// over the closed list range [low, high], writing one index per target
// into indices. Each slot receives exactly the value an independent Low
// call over [low, high] would return for that target.
//
// Rather than searching each target independently, LowBatch splits on the
// middle target, resolves it with Low, and uses the resulting index to
// bound the search window for both remaining halves: targets below the
// middle cannot land above its index, targets above cannot land below it.
// Aggregate work approaches O(num * log(n/num) + n) for large batches.
//
// Preconditions, unchecked: targets sorted ascending under cmp, the list
// sorted ascending within [low, high], len(indices) >= len(targets).
func LowBatch[E, T any](targets []T, list List[E], low, high int, cmp func(T, E) int, indices []int) {
	if len(targets) == 0 {
		return
	}

	if low > high {
		// Empty list range: every target's low bound is low.
		for i := range targets {
			indices[i] = low
		}
		return
	}

	mid := len(targets) / 2
	index, _ := Low(list, targets[mid], low, high, cmp)
	indices[mid] = index

	// A middle target larger than everything in range yields high+1,
	// which would push the recursion out of bounds. Clamp the split
	// point only; the written index stays as returned.
	split := index
	if split > high {
		split = high
	}

	if mid > 0 {
		LowBatch(targets[:mid], list, low, split, cmp, indices[:mid])
	}
	if mid+1 < len(targets) {
		LowBatch(targets[mid+1:], list, split, high, cmp, indices[mid+1:])
	}
}
