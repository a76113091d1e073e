package task_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padlab/taskpad/internal/task"
)

func TestStatistics_Empty(t *testing.T) {
	store := newTestStore(t, &memRepo{}, time.Now())

	stats := store.Statistics()
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByStatus)
	assert.Empty(t, stats.ByPriority)
	assert.Empty(t, stats.Overdue)
}

func TestStatistics_Breakdown(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, &memRepo{}, now)

	first, err := store.Add("first", 5, nil)
	require.NoError(t, err)
	second, err := store.Add("second", 5, nil)
	require.NoError(t, err)
	_, err = store.Add("third", 4, nil)
	require.NoError(t, err)

	_, err = store.UpdateStatus(first.ID, task.StatusDone)
	require.NoError(t, err)
	_, err = store.UpdateStatus(second.ID, task.StatusInProgress)
	require.NoError(t, err)

	stats := store.Statistics()
	assert.Equal(t, 3, stats.Total)

	// Each status holds one of three tasks; 33% each. The percentages
	// are rounded independently and do not sum to 100 here.
	require.Len(t, stats.ByStatus, 3)
	assert.Equal(t, []task.StatusCount{
		{Status: task.StatusNew, Count: 1, Percent: 33},
		{Status: task.StatusInProgress, Count: 1, Percent: 33},
		{Status: task.StatusDone, Count: 1, Percent: 33},
	}, stats.ByStatus)

	// Priority levels with zero tasks are omitted, highest first.
	assert.Equal(t, []task.PriorityCount{
		{Priority: 5, Count: 2},
		{Priority: 4, Count: 1},
	}, stats.ByPriority)
}

func TestStatistics_Overdue(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, &memRepo{}, now)

	past := now.Add(-time.Hour)
	future := now.Add(30 * 24 * time.Hour)

	open, err := store.Add("late", 3, &past)
	require.NoError(t, err)
	_, err = store.Add("upcoming", 3, &future)
	require.NoError(t, err)
	closed, err := store.Add("late-but-done", 3, &past)
	require.NoError(t, err)
	_, err = store.UpdateStatus(closed.ID, task.StatusDone)
	require.NoError(t, err)

	stats := store.Statistics()
	require.Len(t, stats.Overdue, 1)
	assert.Equal(t, open.ID, stats.Overdue[0].ID)
}

func TestStatistics_SingleStatusIsHundredPercent(t *testing.T) {
	store := newTestStore(t, &memRepo{}, time.Now())

	_, err := store.Add("only", 1, nil)
	require.NoError(t, err)

	stats := store.Statistics()
	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, task.StatusCount{Status: task.StatusNew, Count: 1, Percent: 100}, stats.ByStatus[0])
}
