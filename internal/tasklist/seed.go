// Built-in sample dataset used when a collection's key has never been
// written or its value cannot be read.
package tasklist

import (
	"time"

	"github.com/google/uuid"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

// seedCategory describes one category seeded on first run.
type seedCategory struct {
	name  string
	color string
}

// seedTask describes one task seeded on first run, keyed to a category by
// name.
type seedTask struct {
	title    string
	priority string
	category string
	estimate float64
}

var seedCategories = []seedCategory{
	{"Errands", "#4caf50"},
	{"Work", "#2196f3"},
	{"Home", "#ff9800"},
}

var seedTasks = []seedTask{
	{"Buy groceries", types.PriorityMedium, "Errands", 45},
	{"Prepare weekly report", types.PriorityHigh, "Work", 90},
	{"Water the plants", types.PriorityLow, "Home", 10},
}

// seedData builds the sample categories and tasks with fresh ids and
// timestamps. Both slices are consistent: every task references a seeded
// category.
func seedData(now time.Time) ([]*types.Category, []*types.Task) {
	categories := make([]*types.Category, 0, len(seedCategories))
	byName := make(map[string]string, len(seedCategories))
	for _, sc := range seedCategories {
		c := &types.Category{
			Meta:  types.Meta{ID: newSeedID(), CreatedAt: now, UpdatedAt: now},
			Name:  sc.name,
			Color: sc.color,
		}
		categories = append(categories, c)
		byName[sc.name] = c.ID
	}

	tasks := make([]*types.Task, 0, len(seedTasks))
	for _, st := range seedTasks {
		tasks = append(tasks, &types.Task{
			Meta:       types.Meta{ID: newSeedID(), CreatedAt: now, UpdatedAt: now},
			Title:      st.title,
			Status:     types.StatusPending,
			Priority:   st.priority,
			CategoryID: byName[st.category],
			Estimate:   st.estimate,
		})
	}
	return categories, tasks
}

// newSeedID generates an id for seed records, falling back to the random
// UUID version if v7 generation fails.
func newSeedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
