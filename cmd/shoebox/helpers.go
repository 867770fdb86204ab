// Shared helpers for shoebox CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/driftwood-labs/shoebox/internal/tasklist"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// parseDueDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if ts, err := time.Parse("2006-01-02", value); err == nil {
		return &ts, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return &ts, nil
	}
	return nil, &types.ValidationError{Field: "due", Reason: "expected YYYY-MM-DD or RFC 3339, got " + value}
}

// resolveCategoryFlag turns the --category flag into a category id. The flag
// accepts an id, a unique id prefix, or a name; a value that matches nothing
// is an error, unlike assist drafts where unknown names silently stay
// unassigned.
func resolveCategoryFlag(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return tasklist.CategoryUnassigned, nil
	}
	if category, err := svc.Category(value); err == nil {
		return category.ID, nil
	}
	if id := svc.ResolveCategory(value); id != tasklist.CategoryUnassigned {
		return id, nil
	}
	return "", &types.ValidationError{Field: "category", Reason: "no category with id or name " + value}
}

// printTaskTable prints tasks in a human-readable table.
func printTaskTable(tasks []*types.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tCATEGORY\tDUE\tEST")
	for _, task := range tasks {
		due := "-"
		if task.DueDate != nil {
			due = task.DueDate.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.0f\n",
			shortID(task.ID),
			truncate(task.Title, 40),
			task.Status,
			task.Priority,
			categoryLabel(task.CategoryID),
			due,
			task.Estimate,
		)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d task(s)\n", len(tasks))
}

// printCategoryTable prints categories in a human-readable table.
func printCategoryTable(categories []*types.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tCOLOR")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\n", shortID(c.ID), c.Name, c.Color)
	}
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d categor(ies)\n", len(categories))
}

// categoryLabel resolves a category id for table output.
func categoryLabel(id string) string {
	if id == tasklist.CategoryUnassigned {
		return "-"
	}
	category, err := svc.Category(id)
	if err != nil {
		return "-"
	}
	return category.Name
}

// shortID truncates an id to its first 8 characters for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
