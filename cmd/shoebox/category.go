// Category command group for the shoebox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var (
	categoryName  string
	categoryColor string
)

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new category",
	Long: `Add creates a new category with the given name.

Example:
  shoebox category add --name Errands
  shoebox category add --name Work --color "#2196f3"`,
	RunE: runCategoryAdd,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoryList,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Long: `Delete removes a category. The id may be abbreviated to any unique
prefix. Tasks that referenced it become uncategorized; no task is deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryDelete,
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryName, "name", "", "category name (required)")
	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "", "display color, e.g. #4caf50")
	_ = categoryAddCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	created, err := svc.CreateCategory(&types.Category{Name: categoryName, Color: categoryColor})
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created category: %s\n", created.ID)
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	categories, err := svc.Categories()
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(categories)
	}
	printCategoryTable(categories)
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := svc.DeleteCategory(id); err != nil {
		return err
	}
	if flagJSON {
		return printJSON(map[string]string{"deleted": id})
	}
	fmt.Printf("Deleted category: %s\n", id)
	return nil
}
