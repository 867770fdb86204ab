package types

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestValidStatusAndPriority(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusDone} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be a valid status", s)
		}
	}
	if ValidStatus("archived") {
		t.Error("expected archived to be invalid")
	}
	for _, p := range []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent} {
		if !ValidPriority(p) {
			t.Errorf("expected %q to be a valid priority", p)
		}
	}
	if ValidPriority("critical") {
		t.Error("expected critical to be invalid")
	}
}

func TestPriorityRankOrder(t *testing.T) {
	if !(PriorityRank[PriorityUrgent] > PriorityRank[PriorityHigh] &&
		PriorityRank[PriorityHigh] > PriorityRank[PriorityMedium] &&
		PriorityRank[PriorityMedium] > PriorityRank[PriorityLow]) {
		t.Fatalf("priority ranks out of order: %v", PriorityRank)
	}
}

func TestTaskCloneIsDeep(t *testing.T) {
	due := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orig := &Task{
		Title:   "Buy milk",
		Tags:    []string{"errand"},
		DueDate: &due,
	}
	cp := orig.Clone()
	if diff := cmp.Diff(orig, cp); diff != "" {
		t.Fatalf("clone differs from original (-orig +clone):\n%s", diff)
	}

	cp.Tags[0] = "changed"
	*cp.DueDate = due.AddDate(1, 0, 0)

	if orig.Tags[0] != "errand" {
		t.Error("clone shares the tags slice")
	}
	if !orig.DueDate.Equal(due) {
		t.Error("clone shares the due date pointer")
	}
}
