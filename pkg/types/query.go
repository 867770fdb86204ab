// Query value object driving the view pipeline.
// See docs/ARCHITECTURE.md § Query Pipeline.
package types

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterAll is the sentinel filter value that excludes nothing. An empty
// string is equivalent.
const FilterAll = "all"

// Query specifies what a view displays: free-text search, exact-match field
// filters, and a single sort key with direction. A Query is stateless,
// reconstructible from UI controls, and never persisted.
type Query struct {
	// SearchText is matched case-insensitively as a substring against
	// the entity's searchable fields. Empty matches everything.
	SearchText string

	// Filters maps a filter name to the accepted value. A missing entry,
	// "", or FilterAll is inactive. Active filters are ANDed.
	Filters map[string]string

	// SortKey names the sort comparator. Empty means collection order.
	SortKey string

	// SortDirection is SortAsc or SortDesc. Empty means SortAsc.
	SortDirection string
}

// Descending reports whether the query sorts in descending order.
func (q Query) Descending() bool { return q.SortDirection == SortDesc }

// FilterActive reports whether the named filter constrains the view, and
// returns its value when it does.
func (q Query) FilterActive(name string) (string, bool) {
	v, ok := q.Filters[name]
	if !ok || v == "" || v == FilterAll {
		return "", false
	}
	return v, true
}
