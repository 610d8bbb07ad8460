package sorting

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const nullTag = "!!null"

// A Sort is encoded as a list rather than an object because JSON objects and
// YAML mappings do not promise to keep key order.

// MarshalJSON encodes s as an ordered list of {"property", "order"} objects.
func (s Sort) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Orders())
}

// UnmarshalJSON replaces the contents of s with the decoded list.
// A JSON null leaves s unchanged.
func (s *Sort) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	return s.replaceWith(entries)
}

// MarshalYAML encodes s as an ordered sequence of property/order mappings.
func (s Sort) MarshalYAML() (any, error) {
	return s.Orders(), nil
}

// UnmarshalYAML replaces the contents of s with the decoded sequence.
// A YAML null leaves s unchanged.
func (s *Sort) UnmarshalYAML(value *yaml.Node) error {
	if value.ShortTag() == nullTag {
		return nil
	}

	var entries []Entry
	if err := value.Decode(&entries); err != nil {
		return err
	}

	return s.replaceWith(entries)
}

// replaceWith swaps the contents of s for entries, leaving s untouched on error.
// An entry without an order is ascending.
func (s *Sort) replaceWith(entries []Entry) error {
	decoded := New(nil)

	for i, entry := range entries {
		if entry.Property == "" {
			return fmt.Errorf("entry %d: %w", i+1, ErrEmptyProperty)
		}

		decoded.SetOrderFor(entry.Property, entry.Order)
	}

	s.properties = decoded.properties

	return nil
}
