// View evaluation: search, then filters, then one stable sort.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Evaluate produces the ordered view for a query. Filtering order is fixed:
//
//  1. case-insensitive substring search over the schema's searchable fields
//     (a record matches if any field contains the text; empty text matches
//     everything),
//  2. field filters, ANDed ("" and "all" are inactive),
//  3. a single stable sort by the query's sort key and direction.
//
// An active filter or sort key the schema does not declare returns
// ErrInvalidQuery.
func Evaluate[T any](records []T, q types.Query, s Schema[T]) ([]T, error) {
	for name := range q.Filters {
		if _, declared := s.Filters[name]; !declared {
			return nil, fmt.Errorf("%w: unknown filter %q", types.ErrInvalidQuery, name)
		}
	}
	var compare Comparator[T]
	if q.SortKey != "" {
		var ok bool
		if compare, ok = s.Sorts[q.SortKey]; !ok {
			return nil, fmt.Errorf("%w: unknown sort key %q", types.ErrInvalidQuery, q.SortKey)
		}
	}

	view := make([]T, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(q.SearchText))
	for _, record := range records {
		if !matchesSearch(record, search, s.Searchable) {
			continue
		}
		if !matchesFilters(record, q, s.Filters) {
			continue
		}
		view = append(view, record)
	}

	if compare != nil {
		desc := q.Descending()
		sort.SliceStable(view, func(i, j int) bool {
			c := compare(view[i], view[j])
			if desc {
				return c > 0
			}
			return c < 0
		})
	}
	return view, nil
}

// matchesSearch reports whether any searchable field contains the lowercased
// search text.
func matchesSearch[T any](record T, search string, fields []func(T) string) bool {
	if search == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(record)), search) {
			return true
		}
	}
	return false
}

// matchesFilters reports whether the record satisfies every active filter.
func matchesFilters[T any](record T, q types.Query, filters map[string]func(T) string) bool {
	for name, accessor := range filters {
		want, active := q.FilterActive(name)
		if !active {
			continue
		}
		if accessor(record) != want {
			return false
		}
	}
	return true
}
