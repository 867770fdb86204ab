// Config command group: shows and changes the stored settings.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/internal/tasklist"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change stored settings",
	Long: `Config manages the settings persisted alongside the data: the default
priority for new tasks, the default sort for lists and exports, and the
assist service endpoint. These live in the store, not in config.yaml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored settings",
	RunE:  runConfigShow,
}

var (
	setDefaultPriority string
	setDefaultSort     string
	setDefaultDesc     bool
	setAssistEndpoint  string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change stored settings",
	Long: `Set changes one or more stored settings. Only flags that were set
change; everything else keeps its current value.

Example:
  shoebox config set --default-priority high
  shoebox config set --default-sort due_date --default-desc
  shoebox config set --assist-endpoint http://localhost:8090`,
	RunE: runConfigSet,
}

func init() {
	configSetCmd.Flags().StringVar(&setDefaultPriority, "default-priority", "", "default priority for new tasks (low, medium, high, urgent)")
	configSetCmd.Flags().StringVar(&setDefaultSort, "default-sort", "", "default sort key for lists and exports")
	configSetCmd.Flags().BoolVar(&setDefaultDesc, "default-desc", false, "sort descending by default")
	configSetCmd.Flags().StringVar(&setAssistEndpoint, "assist-endpoint", "", "assist service base URL (empty clears)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings := svc.Settings()
	if flagJSON {
		return printJSON(settings)
	}
	fmt.Printf("Default priority: %s\n", settings.DefaultPriority)
	fmt.Printf("Default sort:     %s", settings.DefaultSortKey)
	if settings.DefaultSortDesc {
		fmt.Print(" (descending)")
	}
	fmt.Println()
	endpoint := settings.AssistEndpoint
	if endpoint == "" {
		endpoint = "(not set)"
	}
	fmt.Printf("Assist endpoint:  %s\n", endpoint)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	settings := svc.Settings()
	flags := cmd.Flags()

	if flags.Changed("default-priority") {
		if !types.ValidPriority(setDefaultPriority) {
			return &types.ValidationError{Field: "default-priority", Reason: "unknown priority " + setDefaultPriority}
		}
		settings.DefaultPriority = setDefaultPriority
	}
	if flags.Changed("default-sort") {
		if _, ok := tasklist.TaskSchema().Sorts[setDefaultSort]; !ok {
			return &types.ValidationError{Field: "default-sort", Reason: "unknown sort key " + setDefaultSort}
		}
		settings.DefaultSortKey = setDefaultSort
	}
	if flags.Changed("default-desc") {
		settings.DefaultSortDesc = setDefaultDesc
	}
	if flags.Changed("assist-endpoint") {
		settings.AssistEndpoint = setAssistEndpoint
	}

	svc.SaveSettings(settings)
	if flagJSON {
		return printJSON(svc.Settings())
	}
	fmt.Println("Settings updated")
	return nil
}
