// Package maps provides an insertion-ordered map with unique keys.
package maps

import (
	"iter"

	"github.com/amp-labs/amp-sort/optional"
)

// OrderedMap is a generic map that preserves insertion order when iterating while
// guaranteeing key uniqueness. Keys use Go's built-in equality, so no operation can
// fail with a collision and every mutation always succeeds.
//
// Thread-safety: OrderedMap is not thread-safe. Concurrent access must be
// synchronized by the caller.
type OrderedMap[K comparable, V any] struct {
	orderedKeys []K     // Keys in insertion order
	data        map[K]V // Values indexed by key
}

// NewOrderedMap creates an empty OrderedMap.
//
// Example:
//
//	m := maps.NewOrderedMap[string, int]()
//	m.Add("first", 1)
//	m.Add("second", 2)
//	// Iteration will always be in order: first, second
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V),
	}
}

// Add inserts or updates a key-value pair in the map.
// If the key already exists, its value is replaced without changing its position
// in the insertion order. If the key is new, it's appended to the end.
func (o *OrderedMap[K, V]) Add(key K, value V) {
	if _, ok := o.data[key]; !ok {
		o.orderedKeys = append(o.orderedKeys, key)
	}

	o.data[key] = value
}

// Get retrieves the value for the given key.
// Returns Some(value) if the key exists, None otherwise.
func (o *OrderedMap[K, V]) Get(key K) optional.Value[V] {
	value, ok := o.data[key]
	if !ok {
		return optional.None[V]()
	}

	return optional.Some(value)
}

// Contains checks whether a key exists in the map.
func (o *OrderedMap[K, V]) Contains(key K) bool {
	_, ok := o.data[key]

	return ok
}

// Size returns the number of key-value pairs currently stored in the map.
// A nil map has size zero.
func (o *OrderedMap[K, V]) Size() int {
	if o == nil {
		return 0
	}

	return len(o.orderedKeys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(o.orderedKeys))
	copy(keys, o.orderedKeys)

	return keys
}

// Seq returns an iterator for ranging over all key-value pairs in insertion order.
// The iterator yields (index, KeyValuePair) tuples where index is the 0-based
// position in the insertion order.
//
//	for i, entry := range m.Seq() {
//	    // process index and entry.Key, entry.Value
//	}
//
// The iterator stops early if the yield function returns false.
func (o *OrderedMap[K, V]) Seq() iter.Seq2[int, KeyValuePair[K, V]] {
	return func(yield func(int, KeyValuePair[K, V]) bool) {
		for i, key := range o.orderedKeys {
			if !yield(i, KeyValuePair[K, V]{Key: key, Value: o.data[key]}) {
				return
			}
		}
	}
}

// Entries returns all key-value pairs in insertion order as a new slice.
// Modifying the slice does not affect the map.
func (o *OrderedMap[K, V]) Entries() []KeyValuePair[K, V] {
	entries := make([]KeyValuePair[K, V], 0, len(o.orderedKeys))

	for _, entry := range o.Seq() {
		entries = append(entries, entry)
	}

	return entries
}

// Union creates a new map containing all key-value pairs from both this map and other.
// Entries from this map are added first, preserving their order, then entries from other.
// If a key exists in both maps, the value from other takes precedence, but the key
// maintains its original position from this map (it's not moved to the end).
//
// The time complexity is O(n + m) where n is the size of this map and m is the size of other.
func (o *OrderedMap[K, V]) Union(other *OrderedMap[K, V]) *OrderedMap[K, V] {
	result := o.Clone()

	if other == nil {
		return result
	}

	for _, entry := range other.Seq() {
		result.Add(entry.Key, entry.Value)
	}

	return result
}

// Clone creates a shallow copy of the map, duplicating its entries and insertion order.
// The values themselves are copied by assignment. Modifications to one map do not
// affect the other. Returns nil if the receiver is nil.
func (o *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	if o == nil {
		return nil
	}

	result := &OrderedMap[K, V]{
		orderedKeys: make([]K, len(o.orderedKeys)),
		data:        make(map[K]V, len(o.data)),
	}

	copy(result.orderedKeys, o.orderedKeys)

	for k, v := range o.data {
		result.data[k] = v
	}

	return result
}

// Equals reports whether both maps hold the same keys in the same insertion order,
// with values that are equal according to eq. Two maps with the same entries in a
// different order are not equal.
func (o *OrderedMap[K, V]) Equals(other *OrderedMap[K, V], eq func(a, b V) bool) bool {
	if o == other {
		return true
	}

	if o == nil || other == nil {
		return o.Size() == 0 && other.Size() == 0
	}

	if len(o.orderedKeys) != len(other.orderedKeys) {
		return false
	}

	for i, key := range o.orderedKeys {
		if other.orderedKeys[i] != key {
			return false
		}

		if !eq(o.data[key], other.data[key]) {
			return false
		}
	}

	return true
}
