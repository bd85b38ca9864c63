package runsearch

// Low searches the closed index range [low, high] of list for target and
// returns the lowest index at which target could be inserted so the list
// stays sorted, with duplicates of target landing first. found reports
// whether some element in range compares equal to target.
//
// The returned index is the smallest i in range with list.At(i) >= target,
// or high+1 when every element in range is smaller. An empty range
// (low == high+1) yields (low, false).
//
// The list must be sorted ascending under cmp within [low, high]; this is
// not checked. cmp receives the target first and an element second.
func Low[E, T any](list List[E], target T, low, high int, cmp func(T, E) int) (index int, found bool) {
	for low <= high {
		mid := (low + high) / 2

		result := cmp(target, list.At(mid))
		if result == 0 {
			// Exact match. Pull the high marker down and keep
			// looking in case an earlier duplicate exists.
			found = true
			high = mid
			if low == high {
				break
			}
		} else if result < 0 {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}

	if found {
		// The narrowed high marker is the leftmost match.
		return high, true
	}
	return high + 1, false
}

// High is the mirror of Low: it returns the highest index after which
// target could be inserted so the list stays sorted, with duplicates of
// target landing last. found reports whether some element in range
// compares equal to target.
//
// The returned index is the largest i in range with list.At(i) <= target,
// or low-1 when every element in range is larger. An empty range
// (low == high+1) yields (low-1, false).
//
// For a value occupying positions [a..b] of a full-range search, Low
// returns a and High returns b; for a value with a single occurrence both
// return the same index.
func High[E, T any](list List[E], target T, low, high int, cmp func(T, E) int) (index int, found bool) {
	for low <= high {
		// Ceiling midpoint, so a match pulls the low marker up
		// instead of stalling.
		mid := (low+high)/2 + ((high - low) & 1)

		result := cmp(target, list.At(mid))
		if result == 0 {
			// Exact match. Pull the low marker up and keep
			// looking in case a later duplicate exists.
			found = true
			low = mid
			if low == high {
				break
			}
		} else if result < 0 {
			high = mid - 1
		} else {
			low = mid + 1
		}
	}

	if found {
		// The narrowed low marker is the rightmost match.
		return low, true
	}
	return low - 1, false
}
