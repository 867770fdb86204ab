// Task update command edits an existing task.
// See docs/ARCHITECTURE.md § Mutation Protocol.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

var (
	updateTitle       string
	updateDescription string
	updateNotes       string
	updateStatus      string
	updatePriority    string
	updateCategory    string
	updateDue         string
	updateEstimate    float64
	updateTags        []string
)

var taskUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a task",
	Long: `Update applies the given flags to the task with the given id. Ids may
be abbreviated to any unique prefix, like the ones "task list" prints. Only
flags that were set change; everything else is left alone. The task's id
and creation time never change.

Example:
  shoebox task update 0198a3f2 --status in_progress
  shoebox task update 0198a3f2 --priority urgent --due 2026-09-01
  shoebox task update 0198a3f2 --due ""`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskUpdate,
}

func init() {
	taskUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "task title")
	taskUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "longer description")
	taskUpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
	taskUpdateCmd.Flags().StringVar(&updateStatus, "status", "", "status: pending, in_progress, or done")
	taskUpdateCmd.Flags().StringVar(&updatePriority, "priority", "", "priority: low, medium, high, or urgent")
	taskUpdateCmd.Flags().StringVar(&updateCategory, "category", "", "category id or name (empty clears)")
	taskUpdateCmd.Flags().StringVar(&updateDue, "due", "", "due date (YYYY-MM-DD; empty clears)")
	taskUpdateCmd.Flags().Float64Var(&updateEstimate, "estimate", 0, "estimate in minutes")
	taskUpdateCmd.Flags().StringSliceVar(&updateTags, "tag", nil, "replacement tags (repeatable)")
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]
	flags := cmd.Flags()

	var categoryID string
	if flags.Changed("category") {
		var err error
		categoryID, err = resolveCategoryFlag(updateCategory)
		if err != nil {
			return err
		}
	}
	var due *time.Time
	if flags.Changed("due") {
		var err error
		due, err = parseDueDate(updateDue)
		if err != nil {
			return err
		}
	}

	updated, err := svc.UpdateTask(id, func(task *types.Task) {
		if flags.Changed("title") {
			task.Title = updateTitle
		}
		if flags.Changed("description") {
			task.Description = updateDescription
		}
		if flags.Changed("notes") {
			task.Notes = updateNotes
		}
		if flags.Changed("status") {
			task.Status = updateStatus
		}
		if flags.Changed("priority") {
			task.Priority = updatePriority
		}
		if flags.Changed("category") {
			task.CategoryID = categoryID
		}
		if flags.Changed("due") {
			task.DueDate = due
		}
		if flags.Changed("estimate") {
			task.Estimate = updateEstimate
		}
		if flags.Changed("tag") {
			task.Tags = updateTags
		}
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("Updated task: %s\n", updated.ID)
	return nil
}
