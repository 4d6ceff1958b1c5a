// Package utils implements generic helper functions shared by the
// interpolation packages.
package utils

// AllDistinct returns true if all elements of s are distinct.
func AllDistinct[V comparable](s []V) bool {
	_, ok := FirstDuplicate(s)
	return !ok
}

// FirstDuplicate scans s left to right and returns the first element already
// seen earlier in the slice, if any.
func FirstDuplicate[V comparable](s []V) (v V, ok bool) {
	m := make(map[V]struct{}, len(s))
	for _, si := range s {
		if _, ok = m[si]; ok {
			return si, true
		}
		m[si] = struct{}{}
	}
	return v, false
}
