// Package compare provides utilities for comparing values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// SliceEquals reports whether two slices hold equal elements at every index.
// The comparison is order-sensitive: the same elements in a different order
// are not equal. Nil and empty slices are considered equal.
func SliceEquals[T Comparable[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}

	return true
}
