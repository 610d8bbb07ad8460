// Package order defines Order, the direction in which a single property is sorted.
//
// An Order is an immutable value. Two Orders with the same Direction are
// interchangeable, so they can be copied and shared freely, including across
// goroutines.
package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/amp-labs/amp-sort/hashing"
	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// ErrInvalidDirection is returned when a direction is neither Ascending nor Descending.
var ErrInvalidDirection = errors.New("invalid sort direction")

// Direction is the discriminant of an Order.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// Valid reports whether d is one of the recognized directions.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// Order is a sort direction. The zero value is ascending, so an invalid
// Order cannot be constructed.
type Order struct {
	descending bool
}

// New returns the Order for the given direction, or ErrInvalidDirection.
func New(d Direction) (Order, error) {
	if !d.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
	}

	return Order{descending: d == Descending}, nil
}

// Asc returns the ascending Order.
func Asc() Order {
	return Order{}
}

// Desc returns the descending Order.
func Desc() Order {
	return Order{descending: true}
}

// Parse reads a direction as written by humans: "asc", "ascending",
// "desc" or "descending", case-insensitively.
func Parse(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Asc(), nil
	case "desc", "descending":
		return Desc(), nil
	default:
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Direction returns the discriminant of this Order.
func (o Order) Direction() Direction {
	if o.descending {
		return Descending
	}

	return Ascending
}

// IsAscending reports whether o sorts from lowest to highest.
func (o Order) IsAscending() bool {
	return !o.descending
}

// IsDescending reports whether o sorts from highest to lowest.
func (o Order) IsDescending() bool {
	return o.descending
}

// Reverse returns the opposite Order.
func (o Order) Reverse() Order {
	return Order{descending: !o.descending}
}

// Equals reports whether both Orders have the same direction.
func (o Order) Equals(other Order) bool {
	return o.descending == other.descending
}

// String returns the discriminant, "ASC" or "DESC".
func (o Order) String() string {
	return string(o.Direction())
}

// UpdateHash writes the direction to h.
func (o Order) UpdateHash(h hash.Hash) error {
	return hashing.HashableString(o.Direction()).UpdateHash(h)
}

// MarshalJSON encodes o as its discriminant string.
func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON reads any direction accepted by Parse. A JSON null leaves o unchanged.
func (o *Order) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}

// MarshalYAML encodes o as its discriminant string.
func (o Order) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML reads any direction accepted by Parse. A YAML null leaves o unchanged.
func (o *Order) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == nullTag {
		return nil
	}

	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := Parse(raw)
	if err != nil {
		return err
	}

	*o = parsed

	return nil
}
