// Package query implements the pure view pipeline: text search, ANDed field
// filters, one stable sort, and derived aggregates. Nothing in this package
// mutates or caches; every call recomputes from the records it is given.
// See docs/ARCHITECTURE.md § Query Pipeline.
package query

import (
	"strings"
	"time"
)

// Comparator orders two records for one sort key. Negative means a before b.
type Comparator[T any] func(a, b T) int

// Schema declares how the pipeline reads one entity type: which fields are
// searched, which filters exist, and which sort keys are available.
type Schema[T any] struct {
	// Searchable extracts the text fields matched by SearchText.
	Searchable []func(T) string

	// Filters maps a filter name to the accessor its value is compared
	// against.
	Filters map[string]func(T) string

	// Sorts maps a sort key to its comparator.
	Sorts map[string]Comparator[T]
}

// ByString compares a string field case-insensitively.
func ByString[T any](field func(T) string) Comparator[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

// ByNumber compares a numeric field.
func ByNumber[T any](field func(T) float64) Comparator[T] {
	return func(a, b T) int {
		switch av, bv := field(a), field(b); {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	}
}

// ByTime compares an optional date field by instant. A missing date compares
// greater than every present date, which places it last in ascending order
// and first in descending order.
func ByTime[T any](field func(T) *time.Time) Comparator[T] {
	return func(a, b T) int {
		av, bv := field(a), field(b)
		switch {
		case av == nil && bv == nil:
			return 0
		case av == nil:
			return 1
		case bv == nil:
			return -1
		case av.Before(*bv):
			return -1
		case av.After(*bv):
			return 1
		default:
			return 0
		}
	}
}

// ByRank compares an enumerated field through an explicit rank table, never
// alphabetically. Values missing from the table rank below every listed
// value.
func ByRank[T any](field func(T) string, rank map[string]int) Comparator[T] {
	return func(a, b T) int {
		return rank[field(a)] - rank[field(b)]
	}
}
