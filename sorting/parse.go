package sorting

import (
	"errors"
	"fmt"
	"strings"

	errors2 "github.com/amp-labs/amp-sort/errors"
	"github.com/amp-labs/amp-sort/order"
)

var (
	// ErrInvalidExpression is returned by Parse when a sort expression is malformed.
	ErrInvalidExpression = errors.New("invalid sort expression")

	// ErrEmptyProperty is returned when external input names a blank property.
	ErrEmptyProperty = errors.New("empty sort property")

	errTooManyWords = errors.New("expected a property and at most one direction")
	errExtraPrefix  = errors.New("property may carry at most one '-' or '+' prefix")
)

// Parse reads a comma separated sort expression as found in query strings.
// Each term is a property name, optionally followed by a direction:
//
//	name            ascending
//	+name           ascending
//	-name           descending
//	name:desc       descending (also "name desc", "name:ascending", ...)
//
// A blank expression yields an empty Sort. A property listed twice keeps its
// first position and takes the last direction, as with SetOrderFor. Every
// malformed term is reported, joined into one error wrapping ErrInvalidExpression.
func Parse(expr string) (*Sort, error) {
	s := New(nil)

	if strings.TrimSpace(expr) == "" {
		return s, nil
	}

	errs := &errors2.Collection{}

	for i, term := range strings.Split(expr, ",") {
		property, o, err := parseTerm(term)
		if err != nil {
			errs.Add(fmt.Errorf("%w: term %d (%q): %w", ErrInvalidExpression, i+1, term, err))

			continue
		}

		s.SetOrderFor(property, o)
	}

	if errs.HasError() {
		return nil, errs.GetError()
	}

	return s, nil
}

func parseTerm(term string) (string, order.Order, error) {
	term = strings.TrimSpace(term)

	var (
		prefixed bool
		o        = order.Asc()
	)

	switch {
	case strings.HasPrefix(term, "-"):
		prefixed, o = true, order.Desc()
		term = term[1:]
	case strings.HasPrefix(term, "+"):
		prefixed = true
		term = term[1:]
	}

	property, direction, hasDirection, err := cutDirection(term)
	if err != nil {
		return "", order.Order{}, err
	}

	if property == "" {
		return "", order.Order{}, ErrEmptyProperty
	}

	if strings.HasPrefix(property, "-") || strings.HasPrefix(property, "+") {
		return "", order.Order{}, errExtraPrefix
	}

	if !hasDirection {
		return property, o, nil
	}

	if prefixed {
		return "", order.Order{}, fmt.Errorf("%w: both prefix and suffix given", order.ErrInvalidDirection)
	}

	o, err = order.Parse(direction)
	if err != nil {
		return "", order.Order{}, err
	}

	return property, o, nil
}

// cutDirection splits "name:dir" or "name dir".
func cutDirection(term string) (property, direction string, found bool, err error) {
	if property, direction, found = strings.Cut(term, ":"); found {
		return strings.TrimSpace(property), direction, true, nil
	}

	fields := strings.Fields(term)
	switch len(fields) {
	case 0:
		return "", "", false, nil
	case 1:
		return fields[0], "", false, nil
	case 2: //nolint:mnd
		return fields[0], fields[1], true, nil
	default:
		return "", "", false, errTooManyWords
	}
}
