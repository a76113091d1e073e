package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padlab/taskpad/internal/task"
)

func TestRenderTasks(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.Local)
	past := now.Add(-time.Hour)
	soon := now.Add(24 * time.Hour)

	views := []task.View{
		{Task: task.Task{ID: 1, Title: "late", Priority: 5, Status: task.StatusInProgress, Deadline: &past}, Flag: task.FlagOverdue},
		{Task: task.Task{ID: 2, Title: "upcoming", Priority: 3, Status: task.StatusNew, Deadline: &soon}, Flag: task.FlagSoon},
		{Task: task.Task{ID: 3, Title: "whenever", Priority: 1, Status: task.StatusNew}, Flag: task.FlagNone},
	}

	var buf bytes.Buffer
	require.NoError(t, renderTasks(&buf, views))
	out := buf.String()

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "DEADLINE")
	assert.Contains(t, out, "late")
	assert.Contains(t, out, "[OVERDUE]")
	assert.Contains(t, out, "[SOON]")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "-", "tasks without a deadline show a dash")
}

func TestRenderStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, task.Stats{}))
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestRenderStats_Breakdown(t *testing.T) {
	stats := task.Stats{
		Total: 3,
		ByStatus: []task.StatusCount{
			{Status: task.StatusNew, Count: 1, Percent: 33},
			{Status: task.StatusInProgress, Count: 1, Percent: 33},
			{Status: task.StatusDone, Count: 1, Percent: 33},
		},
		ByPriority: []task.PriorityCount{
			{Priority: 5, Count: 2},
			{Priority: 4, Count: 1},
		},
		Overdue: []task.Task{
			{ID: 1, Title: "late"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, stats))
	out := buf.String()

	assert.Contains(t, out, "Total tasks:")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "new")
	assert.Contains(t, out, "(33%)")
	assert.Contains(t, out, "priority 5")
	assert.Contains(t, out, "Overdue tasks:")
	assert.Contains(t, out, "- late")
}
