package bplustree

import "cmp"

// insertAt and removeAt are the shared in-place splice primitives the
// insert, delete, borrow and merge paths use across keys, values and
// children slices alike. Grounded on the generic ordered-list
// insert/remove pattern (andjam-btree's list[T]), generalized here to
// a single pair of free functions since node stores keys, values and
// children as three independently-typed slices rather than one named
// list type.
func insertAt[T any](s *[]T, idx int, v T) {
	var zero T
	*s = append(*s, zero)
	copy((*s)[idx+1:], (*s)[idx:])
	(*s)[idx] = v
}

func removeAt[T any](s *[]T, idx int) T {
	v := (*s)[idx]
	*s = append((*s)[:idx], (*s)[idx+1:]...)
	return v
}

// lowerBound returns the index of the first key >= target, and whether
// that key is an exact match. For a leaf this locates the key itself;
// for an internal node this is the descent index i (the number of
// separators strictly less than target).
func lowerBound[K cmp.Ordered](keys []K, target K) (idx int, found bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case keys[mid] < target:
			lo = mid + 1
		case keys[mid] > target:
			hi = mid
		default:
			return mid, true
		}
	}
	return lo, false
}

func ascending[K cmp.Ordered](keys []K) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i] <= keys[i-1] {
			return false
		}
	}
	return true
}
