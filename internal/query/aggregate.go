// Derived aggregates for charts and statistics.
package query

// CountBy groups records by key and counts each group. Derived, never
// persisted; callers recompute it whenever the collection changes.
func CountBy[T any](records []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, record := range records {
		counts[key(record)]++
	}
	return counts
}

// SumBy totals value over the records matching predicate. A nil predicate
// matches every record.
func SumBy[T any](records []T, value func(T) float64, predicate func(T) bool) float64 {
	var total float64
	for _, record := range records {
		if predicate != nil && !predicate(record) {
			continue
		}
		total += value(record)
	}
	return total
}
