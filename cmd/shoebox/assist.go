// Assist command asks the assist service to draft a task from free text.
// See docs/ARCHITECTURE.md § System Components (Assist).
package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftwood-labs/shoebox/internal/assist"
)

var (
	assistAttach string
	assistApply  bool
)

var assistCmd = &cobra.Command{
	Use:   "assist <prompt...>",
	Short: "Draft a task from free-form text",
	Long: `Assist sends the prompt (and an optional attachment) to the configured
assist service and parses the reply into a task draft. By default the draft
is only printed; --apply creates the task.

A draft category name that matches an existing category (case-insensitive)
is used; anything else leaves the task uncategorized. The endpoint comes
from the stored settings, falling back to assist_endpoint in config.yaml.

Example:
  shoebox assist "plan the team offsite for late September"
  shoebox assist --attach meeting-notes.txt "turn these notes into a task"
  shoebox assist --apply "renew the car insurance before 2026-10-01"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAssist,
}

func init() {
	assistCmd.Flags().StringVar(&assistAttach, "attach", "", "file to send alongside the prompt")
	assistCmd.Flags().BoolVar(&assistApply, "apply", false, "create the drafted task instead of previewing it")
}

// assistEndpoint resolves the service URL: stored settings first, then
// config.yaml.
func assistEndpoint() string {
	if endpoint := svc.Settings().AssistEndpoint; endpoint != "" {
		return endpoint
	}
	return configAssistEndpoint
}

func runAssist(cmd *cobra.Command, args []string) error {
	req := assist.Request{Prompt: strings.Join(args, " ")}

	if assistAttach != "" {
		data, err := os.ReadFile(assistAttach)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		mediaType := mime.TypeByExtension(filepath.Ext(assistAttach))
		if mediaType == "" {
			mediaType = "application/octet-stream"
		}
		req.Attachment = &assist.Attachment{
			Name:      filepath.Base(assistAttach),
			MediaType: mediaType,
			Data:      data,
		}
	}

	client := &assist.Client{BaseURL: assistEndpoint()}
	result, err := client.Summarize(cmd.Context(), req)
	if err != nil {
		return err
	}

	draft, err := assist.ParseTaskDraft(result)
	if err != nil {
		return err
	}

	if !assistApply {
		if flagJSON {
			return printJSON(draft)
		}
		fmt.Println("Draft (use --apply to create):")
		printDraft(draft)
		return nil
	}

	created, err := svc.ApplyDraft(draft)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created task: %s\n", created.ID)
	return nil
}

// printDraft writes a human-readable draft preview.
func printDraft(draft assist.TaskDraft) {
	fmt.Printf("  Title:    %s\n", draft.Title)
	if draft.Description != "" {
		fmt.Printf("  Desc:     %s\n", draft.Description)
	}
	if draft.Priority != "" {
		fmt.Printf("  Priority: %s\n", draft.Priority)
	}
	if draft.CategoryName != "" {
		fmt.Printf("  Category: %s\n", draft.CategoryName)
	}
	if draft.DueDate != nil {
		fmt.Printf("  Due:      %s\n", draft.DueDate.Format("2006-01-02"))
	}
	if draft.Estimate > 0 {
		fmt.Printf("  Estimate: %.0f min\n", draft.Estimate)
	}
	if len(draft.Tags) > 0 {
		fmt.Printf("  Tags:     %s\n", strings.Join(draft.Tags, ", "))
	}
}
