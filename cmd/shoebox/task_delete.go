// Task delete command removes tasks.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id> [id...]",
	Short: "Delete tasks",
	Long: `Delete removes each given task. Ids may be abbreviated to any unique
prefix. With multiple ids, tasks that no longer exist are skipped and
reported; the rest are still removed.

Example:
  shoebox task delete 0198a3f2
  shoebox task delete 0198a3f2 0198a401`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskDelete,
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := svc.DeleteTask(args[0]); err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]string{"deleted": args[0]})
		}
		fmt.Printf("Deleted task: %s\n", args[0])
		return nil
	}

	skipped := svc.BulkDeleteTasks(args)
	if flagJSON {
		return printJSON(map[string]any{"requested": len(args), "skipped": skipped})
	}
	fmt.Printf("Deleted %d task(s)\n", len(args)-len(skipped))
	for _, id := range skipped {
		fmt.Printf("Skipped %s: not found\n", id)
	}
	return nil
}
