// Parse-and-validate step between a raw service reply and a mutation. The
// raw parsed object is never fed into the store directly.
package assist

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/driftwood-labs/shoebox/pkg/types"
)

// TaskDraft is the typed, validated form of a suggested task. CategoryName
// is the service's free-text category; the application resolves it against
// existing categories and maps anything unknown to the unassigned sentinel,
// never to an arbitrary existing category.
type TaskDraft struct {
	Title        string
	Description  string
	Notes        string
	CategoryName string
	Priority     string
	DueDate      *time.Time
	Estimate     float64
	Tags         []string
}

// draftPayload is the shape the service is asked to produce. Estimate is
// typed loosely because replies carry it as either a number or a string.
type draftPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Notes       string   `json:"notes"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date"`
	Estimate    any      `json:"estimate"`
	Tags        []string `json:"tags"`
}

// ParseTaskDraft validates a raw reply into a TaskDraft. A reply that is not
// JSON or lacks a usable title is a CollaboratorError; the caller shows the
// raw text instead of mutating anything. Lenient fields follow the store's
// input rules: unparsable estimates become 0, unparsable or absent due dates
// stay unset, unknown priorities are dropped so the store's default applies.
func ParseTaskDraft(raw string) (TaskDraft, error) {
	var payload draftPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return TaskDraft{}, &types.CollaboratorError{Reason: "reply is not valid JSON", Err: err}
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return TaskDraft{}, &types.CollaboratorError{Reason: "reply has no title"}
	}

	draft := TaskDraft{
		Title:        title,
		Description:  strings.TrimSpace(payload.Description),
		Notes:        strings.TrimSpace(payload.Notes),
		CategoryName: strings.TrimSpace(payload.Category),
		Tags:         payload.Tags,
	}

	if p := strings.ToLower(strings.TrimSpace(payload.Priority)); types.ValidPriority(p) {
		draft.Priority = p
	}

	if due := parseDate(payload.DueDate); due != nil {
		draft.DueDate = due
	}

	if f := parseEstimate(payload.Estimate); f > 0 {
		draft.Estimate = f
	}

	return draft, nil
}

// parseEstimate coerces a number or numeric string; anything else is 0.
func parseEstimate(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return 0
}

// parseDate accepts RFC 3339 or a bare calendar date; anything else means
// unset.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
