package search

import "golang.org/x/exp/constraints"

// Binary locates target in the ascending slice s by bisection over the
// half-open interval [lo, hi). When duplicates are present, any matching
// index may be returned.
// Returns (0, false) if target is absent.
// Complexity: O(log n).
func Binary[T constraints.Ordered](s []T, target T) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return 0, false
}

// Linear locates the first occurrence of target by left-to-right scan.
// Returns (0, false) if target is absent.
// Complexity: O(n).
func Linear[T comparable](s []T, target T) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}

	return 0, false
}
