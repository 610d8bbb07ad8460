// Package sorting describes how a collection of entities should be ordered.
//
// # Overview
//
// A [Sort] maps property names to an [order.Order] and remembers the order in
// which properties were registered. The first property is the primary sort key,
// the second breaks ties in the first, and so on. A Sort only records intent:
// repositories read it through [Specification] and translate it into whatever
// their storage engine understands (an ORDER BY clause, a comparator chain, a
// document-store sort stage).
//
// # Usage
//
//	s := sorting.New([]string{"lastName", "firstName"})
//	s.SetOrderFor("createdAt", order.Desc())
//
//	for _, entry := range s.Orders() {
//	    fmt.Println(entry.Property, entry.Order) // lastName ASC, firstName ASC, createdAt DESC
//	}
//
//	dir, err := s.OrderFor("age")
//	if errors.Is(err, sorting.ErrPropertyNotFound) {
//	    // the caller decides how to recover; nothing is defaulted here
//	}
//
// Specifications coming from outside the process can be read with [Parse]
// ("lastName,-createdAt") or decoded from JSON and YAML, where a Sort is an
// ordered list of {"property", "order"} objects.
//
// # Merging
//
// [Sort.AndSort] merges another specification into the receiver and returns the
// receiver so calls can be chained. A property present in both keeps the position
// it had in the receiver and takes the direction from the other specification.
// Properties only present in the other specification are appended in its order.
//
// # Thread Safety
//
// [order.Order] is an immutable value and safe to share. A Sort is mutable and
// has no internal locking: synchronize concurrent mutation and reads externally,
// or hand each goroutine its own [Sort.Clone].
package sorting
