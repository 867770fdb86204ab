package tasklist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftwood-labs/shoebox/internal/storage"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

func TestSeedDataIsConsistent(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	categories, tasks := seedData(now)

	require.Len(t, categories, 3)
	require.Len(t, tasks, 3)

	ids := make(map[string]bool)
	for _, c := range categories {
		require.NotEmpty(t, c.ID)
		assert.False(t, ids[c.ID], "duplicate seed id %s", c.ID)
		ids[c.ID] = true
		assert.True(t, c.CreatedAt.Equal(now))
	}
	for _, task := range tasks {
		require.NotEmpty(t, task.ID)
		assert.False(t, ids[task.ID], "duplicate seed id %s", task.ID)
		ids[task.ID] = true
		assert.True(t, ids[task.CategoryID], "task %q references unknown category", task.Title)
		assert.Equal(t, types.StatusPending, task.Status)
		assert.True(t, types.ValidPriority(task.Priority))
		assert.Greater(t, task.Estimate, 0.0)
	}
}

func TestSeedDataFreshIDsPerCall(t *testing.T) {
	now := time.Now().UTC()
	first, _ := seedData(now)
	second, _ := seedData(now)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestOpenFallsBackToSeedOnCorruptKey(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	require.NoError(t, adapter.Save(keyTasks, []byte("{not json")))
	require.NoError(t, adapter.Save(keyCategories, []byte("]]")))

	svc, err := Open(adapter, Options{})
	require.NoError(t, err)
	defer svc.Close()

	tasks, err := svc.Tasks(types.Query{})
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Len(t, categories, 3)
}
