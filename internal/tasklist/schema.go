// Query schemas and input rules for the task and category collections.
package tasklist

import (
	"math"
	"strings"
	"time"

	"github.com/driftwood-labs/shoebox/internal/query"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Filter and sort key names accepted by task queries.
const (
	FilterStatus   = "status"
	FilterPriority = "priority"
	FilterCategory = "category"

	SortTitle     = "title"
	SortStatus    = "status"
	SortPriority  = "priority"
	SortDueDate   = "due_date"
	SortEstimate  = "estimate"
	SortCreatedAt = "created_at"
	SortUpdatedAt = "updated_at"
)

// TaskSchema declares how the query pipeline reads tasks: title, description,
// notes, and tags are searchable; status, priority, and category are
// filterable; sorts cover every list column.
func TaskSchema() query.Schema[*types.Task] {
	return query.Schema[*types.Task]{
		Searchable: []func(*types.Task) string{
			func(t *types.Task) string { return t.Title },
			func(t *types.Task) string { return t.Description },
			func(t *types.Task) string { return t.Notes },
			func(t *types.Task) string { return strings.Join(t.Tags, " ") },
		},
		Filters: map[string]func(*types.Task) string{
			FilterStatus:   func(t *types.Task) string { return t.Status },
			FilterPriority: func(t *types.Task) string { return t.Priority },
			FilterCategory: func(t *types.Task) string { return t.CategoryID },
		},
		Sorts: map[string]query.Comparator[*types.Task]{
			SortTitle:    query.ByString(func(t *types.Task) string { return t.Title }),
			SortStatus:   query.ByString(func(t *types.Task) string { return t.Status }),
			SortPriority: query.ByRank(func(t *types.Task) string { return t.Priority }, types.PriorityRank),
			SortDueDate:  query.ByTime(func(t *types.Task) *time.Time { return t.DueDate }),
			SortEstimate: query.ByNumber(func(t *types.Task) float64 { return t.Estimate }),
			SortCreatedAt: query.ByTime(func(t *types.Task) *time.Time {
				created := t.CreatedAt
				return &created
			}),
			SortUpdatedAt: query.ByTime(func(t *types.Task) *time.Time {
				updated := t.UpdatedAt
				return &updated
			}),
		},
	}
}

// CategorySchema declares the category pipeline: name search and name sort.
func CategorySchema() query.Schema[*types.Category] {
	return query.Schema[*types.Category]{
		Searchable: []func(*types.Category) string{
			func(c *types.Category) string { return c.Name },
		},
		Filters: map[string]func(*types.Category) string{},
		Sorts: map[string]query.Comparator[*types.Category]{
			"name": query.ByString(func(c *types.Category) string { return c.Name }),
		},
	}
}

// prepareTask normalizes task input before validation: trims text, applies
// the status and priority defaults, and zeroes unusable estimates.
func prepareTask(defaultPriority string) func(*types.Task) {
	return func(t *types.Task) {
		t.Title = strings.TrimSpace(t.Title)
		t.Description = strings.TrimSpace(t.Description)
		t.Notes = strings.TrimSpace(t.Notes)
		if t.Status == "" {
			t.Status = types.StatusPending
		}
		if t.Priority == "" {
			t.Priority = defaultPriority
		}
		if t.Estimate < 0 || math.IsNaN(t.Estimate) || math.IsInf(t.Estimate, 0) {
			t.Estimate = 0
		}
	}
}

// validateTask rejects tasks the store must not commit.
func validateTask(t *types.Task) error {
	if t.Title == "" {
		return &types.ValidationError{Field: "title", Reason: "must not be blank"}
	}
	if !types.ValidStatus(t.Status) {
		return &types.ValidationError{Field: "status", Reason: "unknown status " + t.Status}
	}
	if !types.ValidPriority(t.Priority) {
		return &types.ValidationError{Field: "priority", Reason: "unknown priority " + t.Priority}
	}
	return nil
}

// prepareCategory trims category input.
func prepareCategory(c *types.Category) {
	c.Name = strings.TrimSpace(c.Name)
	c.Color = strings.TrimSpace(c.Color)
}

// validateCategory rejects categories without a name.
func validateCategory(c *types.Category) error {
	if c.Name == "" {
		return &types.ValidationError{Field: "name", Reason: "must not be blank"}
	}
	return nil
}
