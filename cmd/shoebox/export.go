// Export command renders the current task view as CSV or HTML.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as CSV or HTML",
	Long: `Export renders tasks in the current view order. The same search, filter,
and sort flags as "task list" apply, so the file matches what list shows.

Every CSV cell is quoted, so titles containing commas, quotes, or newlines
survive a round trip through spreadsheet tools.

Example:
  shoebox export > tasks.csv
  shoebox export --status pending --sort due_date --out pending.csv
  shoebox export --format html --out tasks.html`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&listSearch, "search", "", "free-text search over title, description, notes, and tags")
	exportCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (pending, in_progress, done, or all)")
	exportCmd.Flags().StringVar(&listPriority, "priority", "", "filter by priority (low, medium, high, urgent, or all)")
	exportCmd.Flags().StringVar(&listCategory, "category", "", "filter by category id or name")
	exportCmd.Flags().StringVar(&listSort, "sort", "", "sort key (title, status, priority, due_date, estimate, created_at, updated_at)")
	exportCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv or html")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	q, err := taskListQuery()
	if err != nil {
		return err
	}

	var out string
	switch exportFormat {
	case "csv":
		out, err = svc.ExportCSV(q)
	case "html":
		out, err = svc.ExportHTML(q)
	default:
		return &types.ValidationError{Field: "format", Reason: "want csv or html, got " + exportFormat}
	}
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	return nil
}
