package sorting

import "golang.org/x/exp/constraints"

// Bubble sorts s in place by repeatedly swapping adjacent out-of-order
// pairs. A pass with no swaps means the slice is sorted, so already-ordered
// input costs one pass.
// Complexity: O(n²) worst, O(n) best.
func Bubble[T constraints.Ordered](s []T) {
	n := len(s)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				s[j], s[j+1] = s[j+1], s[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts s in place by growing a sorted prefix: each element walks
// left until it meets a smaller-or-equal neighbor. Equal elements keep
// their relative order (stable).
// Complexity: O(n²) worst, O(n) best.
func Insertion[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}

// Quick sorts s in place with a middle-element pivot and Hoare-style
// partitioning, recursing on the smaller side implicitly through the two
// sub-calls. Not stable.
// Complexity: O(n log n) average, O(n²) worst.
func Quick[T constraints.Ordered](s []T) {
	if len(s) < 2 {
		return
	}
	lo, hi := 0, len(s)-1
	pivot := s[len(s)/2]
	for lo <= hi {
		for s[lo] < pivot {
			lo++
		}
		for s[hi] > pivot {
			hi--
		}
		if lo <= hi {
			s[lo], s[hi] = s[hi], s[lo]
			lo++
			hi--
		}
	}
	Quick(s[:hi+1])
	Quick(s[lo:])
}

// IsSorted reports whether s is in ascending order.
// Complexity: O(n).
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}

	return true
}
