package sorting

import (
	"errors"
	"fmt"
	"hash"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-sort/compare"
	"github.com/amp-labs/amp-sort/hashing"
	"github.com/amp-labs/amp-sort/maps"
	"github.com/amp-labs/amp-sort/order"
)

// ErrPropertyNotFound is returned when looking up a property that was never registered.
var ErrPropertyNotFound = errors.New("sort property not found")

// Specification is the read and write surface repositories depend on.
// *Sort is the implementation; test doubles may provide their own.
type Specification interface {
	// Orders returns every (property, order) pair in precedence order.
	// The returned slice is a snapshot owned by the caller.
	Orders() []Entry

	// AndSort merges other into the receiver and returns the receiver.
	AndSort(other Specification) Specification

	// OrderFor returns the order registered for property, or ErrPropertyNotFound.
	OrderFor(property string) (order.Order, error)

	// Property is an alias of OrderFor.
	Property(property string) (order.Order, error)

	// SetOrderFor registers or overwrites the order of a property.
	SetOrderFor(property string, o order.Order)

	// Equals reports whether both specifications hold the same pairs in the same order.
	Equals(other Specification) bool
}

// Entry is one (property, order) pair of a specification.
type Entry struct {
	Property string      `json:"property" yaml:"property"`
	Order    order.Order `json:"order"    yaml:"order"`
}

// Equals reports whether both entries name the same property with the same order.
func (e Entry) Equals(other Entry) bool {
	return e.Property == other.Property && e.Order.Equals(other.Order)
}

// Option configures New.
type Option func(*options)

type options struct {
	defaultOrder order.Order
}

// WithDefaultOrder sets the order given to every property passed to New.
// Without it, properties are sorted ascending.
func WithDefaultOrder(o order.Order) Option {
	return func(opts *options) {
		opts.defaultOrder = o
	}
}

// Sort is an ordered mapping from property name to order.Order.
// The zero value is an empty specification ready to use.
type Sort struct {
	properties *maps.OrderedMap[string, order.Order]
}

var (
	_ Specification                     = (*Sort)(nil)
	_ compare.Comparable[Specification] = (*Sort)(nil)
	_ hashing.Hashable                  = (*Sort)(nil)
	_ slog.LogValuer                    = (*Sort)(nil)
)

// New creates a Sort that registers each property, in the given order, with
// the default order. Repeated names keep the position of their first occurrence.
func New(properties []string, opts ...Option) *Sort {
	cfg := options{defaultOrder: order.Asc()}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Sort{properties: maps.NewOrderedMap[string, order.Order]()}

	for _, property := range properties {
		// Order is a value type, so each key holds its own copy.
		s.properties.Add(property, cfg.defaultOrder)
	}

	return s
}

// view returns the backing map for reads without allocating into the receiver.
func (s *Sort) view() *maps.OrderedMap[string, order.Order] {
	if s == nil || s.properties == nil {
		return maps.NewOrderedMap[string, order.Order]()
	}

	return s.properties
}

func (s *Sort) writable() *maps.OrderedMap[string, order.Order] {
	if s.properties == nil {
		s.properties = maps.NewOrderedMap[string, order.Order]()
	}

	return s.properties
}

// Orders returns every (property, order) pair in precedence order as a new slice.
func (s *Sort) Orders() []Entry {
	entries := make([]Entry, 0, s.Len())

	for _, kv := range s.view().Seq() {
		entries = append(entries, Entry{Property: kv.Key, Order: kv.Value})
	}

	return entries
}

// AndSort merges other into s. A property already in s keeps its position and
// takes other's order; new properties are appended in other's order. It returns
// s so that merges can be chained. A nil other leaves s untouched.
func (s *Sort) AndSort(other Specification) Specification {
	if other == nil {
		return s
	}

	var incoming *maps.OrderedMap[string, order.Order]

	if o, ok := other.(*Sort); ok {
		incoming = o.view()
	} else {
		incoming = maps.NewOrderedMap[string, order.Order]()
		for _, entry := range other.Orders() {
			incoming.Add(entry.Property, entry.Order)
		}
	}

	s.properties = s.writable().Union(incoming)

	return s
}

// OrderFor returns the order registered for property. An unregistered property
// yields ErrPropertyNotFound; it is never defaulted.
func (s *Sort) OrderFor(property string) (order.Order, error) {
	o, found := s.view().Get(property).Get()
	if !found {
		return order.Order{}, fmt.Errorf("%w: %q", ErrPropertyNotFound, property)
	}

	return o, nil
}

// Property is an alias of OrderFor.
func (s *Sort) Property(property string) (order.Order, error) {
	return s.OrderFor(property)
}

// SetOrderFor overwrites the order of an existing property in place, or appends
// property as the lowest-precedence key.
func (s *Sort) SetOrderFor(property string, o order.Order) {
	s.writable().Add(property, o)
}

// Equals is order-sensitive: the same pairs registered in a different order
// describe a different sort.
func (s *Sort) Equals(other Specification) bool {
	if other == nil {
		return false
	}

	if o, ok := other.(*Sort); ok {
		return s.view().Equals(o.view(), order.Order.Equals)
	}

	return compare.SliceEquals(s.Orders(), other.Orders())
}

// Has reports whether property is registered.
func (s *Sort) Has(property string) bool {
	return s.view().Contains(property)
}

// Len returns the number of registered properties.
func (s *Sort) Len() int {
	return s.view().Size()
}

// IsEmpty reports whether no property is registered.
func (s *Sort) IsEmpty() bool {
	return s.Len() == 0
}

// Properties returns the registered property names in precedence order.
func (s *Sort) Properties() []string {
	return s.view().Keys()
}

// Clone returns an independent copy of s.
func (s *Sort) Clone() *Sort {
	return &Sort{properties: s.view().Clone()}
}

// String renders s the way it would follow ORDER BY, e.g. "name ASC, age DESC".
func (s *Sort) String() string {
	parts := make([]string, 0, s.Len())

	for _, entry := range s.Orders() {
		parts = append(parts, entry.Property+" "+entry.Order.String())
	}

	return strings.Join(parts, ", ")
}

// UpdateHash writes every pair to h in precedence order. Property names are
// length-prefixed so that no two different specifications write the same bytes.
func (s *Sort) UpdateHash(h hash.Hash) error {
	for _, entry := range s.Orders() {
		if _, err := fmt.Fprintf(h, "%d:%s", len(entry.Property), entry.Property); err != nil {
			return err
		}

		if err := entry.Order.UpdateHash(h); err != nil {
			return err
		}

		if _, err := h.Write([]byte{';'}); err != nil {
			return err
		}
	}

	return nil
}

// Fingerprint digests s with the given hash function, e.g. hashing.Xxh3.
// Equal specifications always have equal fingerprints.
func (s *Sort) Fingerprint(hash hashing.HashFunc) (string, error) {
	return hash(s)
}

// LogValue renders s as a group of property=direction attributes in precedence order.
func (s *Sort) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, s.Len())

	for _, entry := range s.Orders() {
		attrs = append(attrs, slog.String(entry.Property, entry.Order.String()))
	}

	return slog.GroupValue(attrs...)
}
