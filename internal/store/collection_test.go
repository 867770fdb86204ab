package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwood-labs/shoebox/internal/storage"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// stubClock advances one second per call so consecutive mutations get
// strictly increasing timestamps.
type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// failingAdapter accepts loads but rejects every save.
type failingAdapter struct{ storage.Adapter }

func (failingAdapter) Save(key string, _ []byte) error {
	return &types.PersistenceError{Op: "save", Key: key, Err: errors.New("quota exceeded")}
}

func prepareTask(t *types.Task) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Status == "" {
		t.Status = types.StatusPending
	}
	if t.Priority == "" {
		t.Priority = types.PriorityMedium
	}
}

func validateTask(t *types.Task) error {
	if t.Title == "" {
		return &types.ValidationError{Field: "title", Reason: "must not be blank"}
	}
	return nil
}

func openTasks(t *testing.T, adapter storage.Adapter) *Collection[*types.Task] {
	t.Helper()
	c, err := Open(adapter, Options[*types.Task]{
		Key:      "tasks",
		Prepare:  prepareTask,
		Validate: validateTask,
		Clock:    &stubClock{now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	return c
}

func TestCreateAssignsIdentityAndDefaults(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())

	created, err := tasks.Create(&types.Task{Title: "  Buy milk ", Priority: types.PriorityLow})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, types.StatusPending, created.Status, "status defaults to pending")
	assert.Equal(t, types.PriorityLow, created.Priority)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateIDsAreUnique(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		created, err := tasks.Create(&types.Task{Title: "task"})
		require.NoError(t, err)
		require.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())

	_, err := tasks.Create(&types.Task{Title: "   "})
	require.Error(t, err)

	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, 0, tasks.Len(), "no partial commit")
}

func TestUpdateEmptyPatchRefreshesUpdatedAtOnly(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	created, err := tasks.Create(&types.Task{Title: "Buy milk", Priority: types.PriorityLow})
	require.NoError(t, err)

	updated, err := tasks.Update(created.ID, func(*types.Task) {})
	require.NoError(t, err)

	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Priority, updated.Priority)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateCannotChangeIdentity(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	created, err := tasks.Create(&types.Task{Title: "Buy milk"})
	require.NoError(t, err)

	updated, err := tasks.Update(created.ID, func(task *types.Task) {
		task.ID = "forged"
		task.CreatedAt = time.Time{}
		task.Title = "Buy oat milk"
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Buy oat milk", updated.Title)
}

func TestUpdateValidationLeavesRecordUntouched(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	created, err := tasks.Create(&types.Task{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = tasks.Update(created.ID, func(task *types.Task) { task.Title = "  " })
	require.Error(t, err)

	got, err := tasks.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
}

func TestUpdateMissingRecord(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())

	_, err := tasks.Update("nope", func(*types.Task) {})
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestDeleteRemovesAndRunsCascades(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	created, err := tasks.Create(&types.Task{Title: "Buy milk"})
	require.NoError(t, err)

	var cascaded []string
	tasks.OnDelete(func(removed *types.Task) {
		cascaded = append(cascaded, removed.ID)
	})

	require.NoError(t, tasks.Delete(created.ID))
	assert.Equal(t, []string{created.ID}, cascaded)
	assert.Equal(t, 0, tasks.Len())

	err = tasks.Delete(created.ID)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestBulkUpdateSkipsInvalidIDs(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	a, err := tasks.Create(&types.Task{Title: "a"})
	require.NoError(t, err)
	b, err := tasks.Create(&types.Task{Title: "b"})
	require.NoError(t, err)

	updated, skipped := tasks.BulkUpdate(
		[]string{a.ID, "missing", b.ID},
		func(task *types.Task) { task.Status = types.StatusDone },
	)

	require.Len(t, updated, 2)
	assert.Equal(t, []string{"missing"}, skipped)
	for _, task := range updated {
		assert.Equal(t, types.StatusDone, task.Status)
	}
}

func TestBulkDeleteSkipsMissingIDs(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	a, err := tasks.Create(&types.Task{Title: "a"})
	require.NoError(t, err)

	skipped := tasks.BulkDelete([]string{"ghost", a.ID})
	assert.Equal(t, []string{"ghost"}, skipped)
	assert.Equal(t, 0, tasks.Len())
}

func TestHydrateSeedsWhenKeyAbsent(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	c, err := Open(adapter, Options[*types.Task]{
		Key: "tasks",
		Seed: func() []*types.Task {
			return []*types.Task{{Meta: types.Meta{ID: "seed-1"}, Title: "Sample"}}
		},
	})
	require.NoError(t, err)

	got, err := c.Get("seed-1")
	require.NoError(t, err)
	assert.Equal(t, "Sample", got.Title)
}

func TestHydrateSeedsWhenValueCorrupt(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	require.NoError(t, adapter.Save("tasks", []byte("{not json")))

	c, err := Open(adapter, Options[*types.Task]{
		Key: "tasks",
		Seed: func() []*types.Task {
			return []*types.Task{{Meta: types.Meta{ID: "seed-1"}, Title: "Sample"}}
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestResolveID(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	raw := `[
		{"id":"0198a3f2-aaaa","title":"first"},
		{"id":"0198a401-bbbb","title":"second"},
		{"id":"0198a3f2","title":"exact"}
	]`
	require.NoError(t, adapter.Save("tasks", []byte(raw)))
	c, err := Open(adapter, Options[*types.Task]{Key: "tasks"})
	require.NoError(t, err)

	t.Run("exact match wins over prefix matches", func(t *testing.T) {
		got, err := c.ResolveID("0198a3f2")
		require.NoError(t, err)
		assert.Equal(t, "0198a3f2", got)
	})

	t.Run("unique prefix expands", func(t *testing.T) {
		got, err := c.ResolveID("0198a401")
		require.NoError(t, err)
		assert.Equal(t, "0198a401-bbbb", got)
	})

	t.Run("ambiguous prefix is a validation error", func(t *testing.T) {
		_, err := c.ResolveID("0198a3")
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "id", verr.Field)
	})

	t.Run("no match is not found", func(t *testing.T) {
		_, err := c.ResolveID("ffff")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("empty input is not found", func(t *testing.T) {
		_, err := c.ResolveID("")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestHydrateWritesSeedBack(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	_, err := Open(adapter, Options[*types.Task]{
		Key: "tasks",
		Seed: func() []*types.Task {
			return []*types.Task{{Meta: types.Meta{ID: "seed-1"}, Title: "Sample"}}
		},
	})
	require.NoError(t, err)

	// A second open without a seed must find the flushed seed data.
	c, err := Open(adapter, Options[*types.Task]{Key: "tasks"})
	require.NoError(t, err)
	got, err := c.Get("seed-1")
	require.NoError(t, err)
	assert.Equal(t, "Sample", got.Title)
}

func TestHydrateDropsDuplicateAndBlankIDs(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	raw := `[
		{"id":"a","title":"first"},
		{"id":"a","title":"dup"},
		{"id":"","title":"blank"},
		{"id":"b","title":"second"}
	]`
	require.NoError(t, adapter.Save("tasks", []byte(raw)))

	c, err := Open(adapter, Options[*types.Task]{Key: "tasks"})
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	got, err := c.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
}

func TestRoundTripAcrossReopen(t *testing.T) {
	adapter := storage.NewMemoryAdapter()

	first := openTasks(t, adapter)
	created, err := first.Create(&types.Task{Title: "persisted"})
	require.NoError(t, err)

	second := openTasks(t, adapter)
	got, err := second.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestFlushFailureKeepsInMemoryState(t *testing.T) {
	adapter := failingAdapter{storage.NewMemoryAdapter()}
	c, err := Open(adapter, Options[*types.Task]{Key: "tasks", Validate: validateTask, Prepare: prepareTask})
	require.NoError(t, err)

	created, err := c.Create(&types.Task{Title: "survives"})
	require.NoError(t, err, "flush failure must not surface from a mutation")

	got, err := c.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "survives", got.Title)
}

func TestListReturnsCopies(t *testing.T) {
	tasks := openTasks(t, storage.NewMemoryAdapter())
	created, err := tasks.Create(&types.Task{Title: "original"})
	require.NoError(t, err)

	tasks.List()[0].Title = "mutated through copy"

	got, err := tasks.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}
