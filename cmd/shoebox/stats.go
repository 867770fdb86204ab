// Stats command prints aggregate task breakdowns.
package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Long: `Stats recomputes counts by status, priority, and category, plus total
and pending estimate minutes, from the current store contents.

Example:
  shoebox stats
  shoebox stats --json`,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	stats := svc.TaskStats()

	if flagJSON {
		return printJSON(stats)
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	printBreakdown(w, "BY STATUS", stats.ByStatus)
	printBreakdown(w, "BY PRIORITY", stats.ByPriority)
	printBreakdown(w, "BY CATEGORY", stats.ByCategory)
	fmt.Fprintf(w, "ESTIMATE\t\n")
	fmt.Fprintf(w, "  total\t%.0f min\n", stats.TotalEstimate)
	fmt.Fprintf(w, "  pending\t%.0f min\n", stats.PendingEstimate)
	w.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	return nil
}

// printBreakdown writes one counts section with keys in a stable order.
func printBreakdown(w *tabwriter.Writer, title string, counts map[string]int) {
	fmt.Fprintf(w, "%s\t\n", title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s\t%d\n", k, counts[k])
	}
}
