// Task entity for the reference task-tracker application.
package types

import "time"

// Task states.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Task priorities, lowest to highest.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// PriorityRank orders priorities for sorting. Higher rank sorts as greater;
// alphabetical order is never used.
var PriorityRank = map[string]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
	PriorityUrgent: 4,
}

// validStatuses is the set of recognized task states.
var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusDone:       true,
}

// ValidStatus reports whether s is a recognized task state.
func ValidStatus(s string) bool { return validStatuses[s] }

// ValidPriority reports whether p is a recognized priority.
func ValidPriority(p string) bool { _, ok := PriorityRank[p]; return ok }

// Task represents one work item.
type Task struct {
	Meta

	// Title is the human-readable name (required, non-blank after
	// trimming).
	Title string `json:"title"`

	// Description is free-form detail text.
	Description string `json:"description,omitempty"`

	// Notes holds additional free text searched alongside Description.
	Notes string `json:"notes,omitempty"`

	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`

	// Status is one of the Status constants. Defaults to pending.
	Status string `json:"status"`

	// Priority is one of the Priority constants. Defaults to medium.
	Priority string `json:"priority"`

	// CategoryID references a Category record. Empty means unassigned;
	// deleting the referenced category resets this to empty.
	CategoryID string `json:"category_id,omitempty"`

	// DueDate is the optional due date. Nil means unset, which is legal
	// and sorts after every present date in ascending order.
	DueDate *time.Time `json:"due_date,omitempty"`

	// Estimate is the estimated effort in minutes. Unparsable input
	// defaults to 0 rather than rejecting the mutation.
	Estimate float64 `json:"estimate,omitempty"`
}

// RecordMeta returns the task's system metadata.
func (t *Task) RecordMeta() *Meta { return &t.Meta }

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	cp := *t
	if t.Tags != nil {
		cp.Tags = append([]string(nil), t.Tags...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		cp.DueDate = &due
	}
	return &cp
}
