// Package tasklist is the reference application over the generic record
// store: a task tracker with categories, settings, derived statistics, CSV
// and HTML export, and assist-drafted tasks. It owns the storage key layout
// and the category -> task cascade.
// See docs/ARCHITECTURE.md § System Components (Task List).
package tasklist

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/driftwood-labs/shoebox/internal/assist"
	"github.com/driftwood-labs/shoebox/internal/export"
	"github.com/driftwood-labs/shoebox/internal/query"
	"github.com/driftwood-labs/shoebox/internal/storage"
	"github.com/driftwood-labs/shoebox/internal/store"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Storage keys, one per collection plus one for settings.
const (
	keyTasks      = "tasks"
	keyCategories = "categories"
	keySettings   = "settings"
)

// CategoryUnassigned is the sentinel for a task without a category. An
// unknown category name, from any source, maps here and never to an
// arbitrary existing category.
const CategoryUnassigned = ""

// Options configures Open. Zero values select production defaults.
type Options struct {
	Logger   *zap.Logger
	Clock    store.Clock
	Observer store.Observer

	// NoSeed opens empty collections instead of the sample dataset when
	// a key is absent.
	NoSeed bool
}

// Service wires the task and category collections and the settings document
// over one persistence adapter.
type Service struct {
	log        *zap.Logger
	adapter    storage.Adapter
	tasks      *store.Collection[*types.Task]
	categories *store.Collection[*types.Category]
	settings   *store.Document[types.Settings]
}

// Open hydrates the service from the adapter. Absent or unreadable keys fall
// back to the built-in sample dataset; Open fails only on misconfiguration.
func Open(adapter storage.Adapter, opts Options) (*Service, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = store.SystemClock{}
	}

	var sampleCategories []*types.Category
	var sampleTasks []*types.Task
	if !opts.NoSeed {
		sampleCategories, sampleTasks = seedData(clock.Now())
	}

	s := &Service{log: log, adapter: adapter}
	s.settings = store.OpenDocument(adapter, keySettings, types.DefaultSettings(), log)

	categories, err := store.Open(adapter, store.Options[*types.Category]{
		Key:      keyCategories,
		Seed:     func() []*types.Category { return sampleCategories },
		Prepare:  prepareCategory,
		Validate: validateCategory,
		Clock:    clock,
		Logger:   log,
		Observer: opts.Observer,
	})
	if err != nil {
		return nil, err
	}
	s.categories = categories

	tasks, err := store.Open(adapter, store.Options[*types.Task]{
		Key:  keyTasks,
		Seed: func() []*types.Task { return sampleTasks },
		Prepare: func(t *types.Task) {
			prepareTask(s.settings.Get().DefaultPriority)(t)
		},
		Validate: validateTask,
		Clock:    clock,
		Logger:   log,
		Observer: opts.Observer,
	})
	if err != nil {
		return nil, err
	}
	s.tasks = tasks

	// Deleting a category clears the reference on every task pointing at
	// it, so no task is ever left with a dangling category id.
	s.categories.OnDelete(func(removed *types.Category) {
		var ids []string
		for _, task := range s.tasks.List() {
			if task.CategoryID == removed.ID {
				ids = append(ids, task.ID)
			}
		}
		if len(ids) == 0 {
			return
		}
		_, skipped := s.tasks.BulkUpdate(ids, func(task *types.Task) {
			task.CategoryID = CategoryUnassigned
		})
		if len(skipped) > 0 {
			s.log.Warn("cascade skipped tasks",
				zap.String("category", removed.ID), zap.Strings("ids", skipped))
		}
	})

	return s, nil
}

// Close releases the underlying adapter.
func (s *Service) Close() error { return s.adapter.Close() }

// CreateTask validates and commits a new task.
func (s *Service) CreateTask(task *types.Task) (*types.Task, error) {
	if task.CategoryID != CategoryUnassigned {
		if _, err := s.categories.Get(task.CategoryID); err != nil {
			return nil, &types.ValidationError{Field: "category", Reason: "unknown category id " + task.CategoryID}
		}
	}
	return s.tasks.Create(task)
}

// UpdateTask applies mutate to the task with the given id or unique id
// prefix.
func (s *Service) UpdateTask(id string, mutate func(*types.Task)) (*types.Task, error) {
	full, err := s.tasks.ResolveID(id)
	if err != nil {
		return nil, err
	}
	return s.tasks.Update(full, mutate)
}

// CompleteTask marks the task done.
func (s *Service) CompleteTask(id string) (*types.Task, error) {
	return s.UpdateTask(id, func(t *types.Task) { t.Status = types.StatusDone })
}

// DeleteTask removes the task with the given id or unique id prefix.
func (s *Service) DeleteTask(id string) error {
	full, err := s.tasks.ResolveID(id)
	if err != nil {
		return err
	}
	return s.tasks.Delete(full)
}

// BulkCompleteTasks marks each id done, skipping ids that no longer exist.
func (s *Service) BulkCompleteTasks(ids []string) (updated []*types.Task, skipped []string) {
	return s.tasks.BulkUpdate(s.resolveTaskIDs(ids), func(t *types.Task) { t.Status = types.StatusDone })
}

// BulkDeleteTasks removes each id, returning the ids that were skipped.
func (s *Service) BulkDeleteTasks(ids []string) []string {
	return s.tasks.BulkDelete(s.resolveTaskIDs(ids))
}

// resolveTaskIDs expands unique id prefixes in place. Inputs that resolve to
// nothing, or ambiguously, pass through unchanged so the bulk operation
// reports them as skipped.
func (s *Service) resolveTaskIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		full, err := s.tasks.ResolveID(id)
		if err != nil {
			out[i] = id
			continue
		}
		out[i] = full
	}
	return out
}

// Task returns the task with the given id or unique id prefix.
func (s *Service) Task(id string) (*types.Task, error) {
	full, err := s.tasks.ResolveID(id)
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(full)
}

// Tasks evaluates a query over the task collection.
func (s *Service) Tasks(q types.Query) ([]*types.Task, error) {
	return query.Evaluate(s.tasks.List(), q, TaskSchema())
}

// CreateCategory validates and commits a new category.
func (s *Service) CreateCategory(category *types.Category) (*types.Category, error) {
	return s.categories.Create(category)
}

// Categories returns every category sorted by name.
func (s *Service) Categories() ([]*types.Category, error) {
	return query.Evaluate(s.categories.List(), types.Query{SortKey: "name"}, CategorySchema())
}

// Category returns the category with the given id or unique id prefix.
func (s *Service) Category(id string) (*types.Category, error) {
	full, err := s.categories.ResolveID(id)
	if err != nil {
		return nil, err
	}
	return s.categories.Get(full)
}

// DeleteCategory removes a category; the cascade clears every task that
// referenced it. Accepts a unique id prefix.
func (s *Service) DeleteCategory(id string) error {
	full, err := s.categories.ResolveID(id)
	if err != nil {
		return err
	}
	return s.categories.Delete(full)
}

// ResolveCategory finds a category by name, case-insensitively. A name that
// matches nothing resolves to the unassigned sentinel.
func (s *Service) ResolveCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryUnassigned
	}
	for _, category := range s.categories.List() {
		if strings.EqualFold(category.Name, name) {
			return category.ID
		}
	}
	return CategoryUnassigned
}

// ApplyDraft turns a validated assist draft into a task. The draft's
// category name is resolved against existing categories; anything unknown
// stays unassigned.
func (s *Service) ApplyDraft(draft assist.TaskDraft) (*types.Task, error) {
	return s.CreateTask(&types.Task{
		Title:       draft.Title,
		Description: draft.Description,
		Notes:       draft.Notes,
		Tags:        draft.Tags,
		Priority:    draft.Priority,
		CategoryID:  s.ResolveCategory(draft.CategoryName),
		DueDate:     draft.DueDate,
		Estimate:    draft.Estimate,
	})
}

// Settings returns the current settings.
func (s *Service) Settings() types.Settings { return s.settings.Get() }

// SaveSettings replaces and persists the settings.
func (s *Service) SaveSettings(settings types.Settings) { s.settings.Put(settings) }

// Stats is the aggregate breakdown used for charts and the stats command.
type Stats struct {
	ByStatus        map[string]int `json:"by_status"`
	ByPriority      map[string]int `json:"by_priority"`
	ByCategory      map[string]int `json:"by_category"`
	TotalEstimate   float64        `json:"total_estimate"`
	PendingEstimate float64        `json:"pending_estimate"`
}

// TaskStats recomputes the aggregate breakdowns from the current
// collections. Deleted categories never appear: their tasks count under
// the unassigned bucket.
func (s *Service) TaskStats() Stats {
	tasks := s.tasks.List()
	return Stats{
		ByStatus:   query.CountBy(tasks, func(t *types.Task) string { return t.Status }),
		ByPriority: query.CountBy(tasks, func(t *types.Task) string { return t.Priority }),
		ByCategory: query.CountBy(tasks, func(t *types.Task) string { return s.categoryName(t.CategoryID) }),
		TotalEstimate: query.SumBy(tasks,
			func(t *types.Task) float64 { return t.Estimate }, nil),
		PendingEstimate: query.SumBy(tasks,
			func(t *types.Task) float64 { return t.Estimate },
			func(t *types.Task) bool { return t.Status != types.StatusDone }),
	}
}

// categoryName resolves an id for display; unassigned and unknown ids map
// to a fixed label.
func (s *Service) categoryName(id string) string {
	if id == CategoryUnassigned {
		return "unassigned"
	}
	category, err := s.categories.Get(id)
	if err != nil {
		return "unassigned"
	}
	return category.Name
}

// exportColumns is the header row of task exports.
var exportColumns = []string{"Title", "Status", "Priority", "Category", "Due Date", "Estimate (min)", "Created At"}

// exportView renders the query result as rows in view order.
func (s *Service) exportView(q types.Query) (export.View, error) {
	tasks, err := s.Tasks(q)
	if err != nil {
		return export.View{}, err
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			t.Title,
			t.Status,
			t.Priority,
			s.categoryName(t.CategoryID),
			due,
			strconv.FormatFloat(t.Estimate, 'f', -1, 64),
			t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return export.View{Columns: exportColumns, Rows: rows}, nil
}

// ExportCSV renders the query result as CSV text.
func (s *Service) ExportCSV(q types.Query) (string, error) {
	view, err := s.exportView(q)
	if err != nil {
		return "", err
	}
	return export.CSV(view), nil
}

// ExportHTML renders the query result as an HTML table.
func (s *Service) ExportHTML(q types.Query) (string, error) {
	view, err := s.exportView(q)
	if err != nil {
		return "", err
	}
	return export.HTML(view), nil
}
