package types

import "testing"

func TestQueryFilterActive(t *testing.T) {
	tests := []struct {
		name       string
		query      Query
		filter     string
		wantValue  string
		wantActive bool
	}{
		{
			name:       "missing filter is inactive",
			query:      Query{},
			filter:     "status",
			wantActive: false,
		},
		{
			name:       "empty value is inactive",
			query:      Query{Filters: map[string]string{"status": ""}},
			filter:     "status",
			wantActive: false,
		},
		{
			name:       "all sentinel is inactive",
			query:      Query{Filters: map[string]string{"status": FilterAll}},
			filter:     "status",
			wantActive: false,
		},
		{
			name:       "concrete value is active",
			query:      Query{Filters: map[string]string{"status": StatusPending}},
			filter:     "status",
			wantValue:  StatusPending,
			wantActive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, active := tt.query.FilterActive(tt.filter)
			if active != tt.wantActive {
				t.Fatalf("FilterActive = %v, want %v", active, tt.wantActive)
			}
			if v != tt.wantValue {
				t.Fatalf("value = %q, want %q", v, tt.wantValue)
			}
		})
	}
}

func TestQueryDescending(t *testing.T) {
	if (Query{SortDirection: SortAsc}).Descending() {
		t.Error("asc reported descending")
	}
	if (Query{}).Descending() {
		t.Error("empty direction reported descending")
	}
	if !(Query{SortDirection: SortDesc}).Descending() {
		t.Error("desc not reported descending")
	}
}
