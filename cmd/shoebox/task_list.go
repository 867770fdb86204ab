// Task list command queries tasks through the query pipeline.
// See docs/ARCHITECTURE.md § Query Pipeline.
package main

import (
	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/internal/tasklist"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

var (
	listSearch   string
	listStatus   string
	listPriority string
	listCategory string
	listSort     string
	listDesc     bool
)

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List runs the query pipeline over all tasks: free-text search, then
filters, then a stable sort.

Filters accept "all" to mean no filtering. The sort key defaults to the
configured default sort.

Example:
  shoebox task list
  shoebox task list --search report --status pending
  shoebox task list --sort priority --desc
  shoebox task list --sort due_date --json`,
	RunE: runTaskList,
}

func init() {
	taskListCmd.Flags().StringVar(&listSearch, "search", "", "free-text search over title, description, notes, and tags")
	taskListCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (pending, in_progress, done, or all)")
	taskListCmd.Flags().StringVar(&listPriority, "priority", "", "filter by priority (low, medium, high, urgent, or all)")
	taskListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category id or name")
	taskListCmd.Flags().StringVar(&listSort, "sort", "", "sort key (title, status, priority, due_date, estimate, created_at, updated_at)")
	taskListCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
}

// taskListQuery assembles a query from the list flags, falling back to the
// stored default sort when --sort is omitted.
func taskListQuery() (types.Query, error) {
	q := types.Query{
		SearchText: listSearch,
		Filters:    map[string]string{},
		SortKey:    listSort,
	}

	if listStatus != "" {
		q.Filters[tasklist.FilterStatus] = listStatus
	}
	if listPriority != "" {
		q.Filters[tasklist.FilterPriority] = listPriority
	}
	if listCategory != "" && listCategory != types.FilterAll {
		id, err := resolveCategoryFlag(listCategory)
		if err != nil {
			return types.Query{}, err
		}
		q.Filters[tasklist.FilterCategory] = id
	} else if listCategory == types.FilterAll {
		q.Filters[tasklist.FilterCategory] = types.FilterAll
	}

	settings := svc.Settings()
	if q.SortKey == "" {
		q.SortKey = settings.DefaultSortKey
		if listDesc || settings.DefaultSortDesc {
			q.SortDirection = types.SortDesc
		}
	} else if listDesc {
		q.SortDirection = types.SortDesc
	}
	return q, nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	q, err := taskListQuery()
	if err != nil {
		return err
	}

	tasks, err := svc.Tasks(q)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(tasks)
	}
	printTaskTable(tasks)
	return nil
}
