// Task add command creates a new task.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

var (
	addTitle       string
	addDescription string
	addNotes       string
	addPriority    string
	addCategory    string
	addDue         string
	addEstimate    float64
	addTags        []string
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long: `Add creates a new task with the given title.

New tasks start as "pending"; priority defaults to the configured default
when the flag is omitted.

Example:
  shoebox task add --title "Buy groceries"
  shoebox task add --title "File taxes" --priority urgent --due 2026-09-15
  shoebox task add --title "Call dentist" --category Errands --json`,
	RunE: runTaskAdd,
}

func init() {
	taskAddCmd.Flags().StringVar(&addTitle, "title", "", "task title (required)")
	taskAddCmd.Flags().StringVar(&addDescription, "description", "", "longer description")
	taskAddCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	taskAddCmd.Flags().StringVar(&addPriority, "priority", "", "priority: low, medium, high, or urgent")
	taskAddCmd.Flags().StringVar(&addCategory, "category", "", "category id or name")
	taskAddCmd.Flags().StringVar(&addDue, "due", "", "due date (YYYY-MM-DD)")
	taskAddCmd.Flags().Float64Var(&addEstimate, "estimate", 0, "estimate in minutes")
	taskAddCmd.Flags().StringSliceVar(&addTags, "tag", nil, "tag (repeatable)")
	_ = taskAddCmd.MarkFlagRequired("title")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	categoryID, err := resolveCategoryFlag(addCategory)
	if err != nil {
		return err
	}
	due, err := parseDueDate(addDue)
	if err != nil {
		return err
	}

	created, err := svc.CreateTask(&types.Task{
		Title:       addTitle,
		Description: addDescription,
		Notes:       addNotes,
		Tags:        addTags,
		Priority:    addPriority,
		CategoryID:  categoryID,
		DueDate:     due,
		Estimate:    addEstimate,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created task: %s\n", created.ID)
	return nil
}
