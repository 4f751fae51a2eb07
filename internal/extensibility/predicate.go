// Package extensibility parses textual filter expressions into predicates for
// AssocList filtering.
package extensibility

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadExpression = errors.New("malformed expression")

// Predicate matches one AssocList entry.
type Predicate func(key, value string) bool

// ParsePredicate parses "field op literal", e.g. "value > 30" or
// "key == alpha". field is key or value; op is one of == != > < >= <=.
// Both sides are compared as numbers when they parse as floats, as strings
// otherwise.
func ParsePredicate(expr string) (Predicate, error) {
	parts := strings.Fields(expr)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: want 3 fields, got %d: %w", expr, len(parts), ErrBadExpression)
	}
	field, op, literal := parts[0], parts[1], parts[2]

	var pick func(k, v string) string
	switch field {
	case "key":
		pick = func(k, _ string) string { return k }
	case "value":
		pick = func(_, v string) string { return v }
	default:
		return nil, fmt.Errorf("%q: unknown field %q: %w", expr, field, ErrBadExpression)
	}

	cmp, err := comparator(op)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", expr, err)
	}

	return func(k, v string) bool {
		return cmp(compare(pick(k, v), literal))
	}, nil
}

// MustParsePredicate is ParsePredicate that panics on a malformed expression.
func MustParsePredicate(expr string) Predicate {
	p, err := ParsePredicate(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(k, v string) bool { return !p(k, v) }
}

func comparator(op string) (func(int) bool, error) {
	switch op {
	case "==":
		return func(c int) bool { return c == 0 }, nil
	case "!=":
		return func(c int) bool { return c != 0 }, nil
	case ">":
		return func(c int) bool { return c > 0 }, nil
	case "<":
		return func(c int) bool { return c < 0 }, nil
	case ">=":
		return func(c int) bool { return c >= 0 }, nil
	case "<=":
		return func(c int) bool { return c <= 0 }, nil
	default:
		return nil, fmt.Errorf("unknown operator %q: %w", op, ErrBadExpression)
	}
}

// compare orders a against b numerically when both are numbers.
func compare(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
