// Task done command marks tasks completed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskDoneCmd = &cobra.Command{
	Use:   "done <id> [id...]",
	Short: "Mark tasks as done",
	Long: `Done marks each given task as completed. Ids may be abbreviated to any
unique prefix. With multiple ids, tasks that no longer exist are skipped
and reported; the rest still complete.

Example:
  shoebox task done 0198a3f2
  shoebox task done 0198a3f2 0198a401 0198a40c`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskDone,
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		done, err := svc.CompleteTask(args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(done)
		}
		fmt.Printf("Completed task: %s\n", done.ID)
		return nil
	}

	updated, skipped := svc.BulkCompleteTasks(args)
	if flagJSON {
		return printJSON(map[string]any{"completed": updated, "skipped": skipped})
	}
	fmt.Printf("Completed %d task(s)\n", len(updated))
	for _, id := range skipped {
		fmt.Printf("Skipped %s: not found\n", id)
	}
	return nil
}
