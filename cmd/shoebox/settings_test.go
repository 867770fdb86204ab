package main

import (
	"errors"
	"testing"

	"github.com/driftwood-labs/shoebox/internal/storage"
	"github.com/driftwood-labs/shoebox/internal/tasklist"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// withMemoryService points the command globals at a memory-backed service
// for the duration of one test.
func withMemoryService(t *testing.T) {
	t.Helper()
	opened, err := tasklist.Open(storage.NewMemoryAdapter(), tasklist.Options{NoSeed: true})
	if err != nil {
		t.Fatalf("open service: %v", err)
	}
	svc = opened
	t.Cleanup(func() {
		_ = svc.Close()
		svc = nil
	})
}

func TestConfigSetUpdatesStoredSettings(t *testing.T) {
	withMemoryService(t)

	if err := configSetCmd.Flags().Set("default-priority", types.PriorityHigh); err != nil {
		t.Fatal(err)
	}
	if err := configSetCmd.Flags().Set("default-sort", "due_date"); err != nil {
		t.Fatal(err)
	}
	if err := runConfigSet(configSetCmd, nil); err != nil {
		t.Fatalf("config set: %v", err)
	}

	settings := svc.Settings()
	if settings.DefaultPriority != types.PriorityHigh {
		t.Errorf("default priority = %q, want %q", settings.DefaultPriority, types.PriorityHigh)
	}
	if settings.DefaultSortKey != "due_date" {
		t.Errorf("default sort = %q, want due_date", settings.DefaultSortKey)
	}

	// New tasks pick up the stored default.
	created, err := svc.CreateTask(&types.Task{Title: "inherits default"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.Priority != types.PriorityHigh {
		t.Errorf("created priority = %q, want %q", created.Priority, types.PriorityHigh)
	}
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	withMemoryService(t)

	tests := []struct {
		name  string
		flag  string
		value string
	}{
		{"unknown priority", "default-priority", "critical"},
		{"unknown sort key", "default-sort", "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := configSetCmd.Flags().Set(tt.flag, tt.value); err != nil {
				t.Fatal(err)
			}
			err := runConfigSet(configSetCmd, nil)
			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}
