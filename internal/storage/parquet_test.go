package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padlab/taskpad/internal/storage"
	"github.com/padlab/taskpad/internal/task"
)

func TestLoad_MissingFile(t *testing.T) {
	f := storage.NewFile(filepath.Join(t.TempDir(), "tasks.parquet"))

	tasks, err := f.Load()
	require.NoError(t, err, "a missing file is an empty collection")
	assert.Empty(t, tasks)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.parquet")
	require.NoError(t, os.WriteFile(path, []byte("not a parquet file"), 0644))

	_, err := storage.NewFile(path).Load()
	var storageErr *storage.Error
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "read", storageErr.Op)
	assert.Equal(t, path, storageErr.Path)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.parquet")
	f := storage.NewFile(path)

	created := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	deadline := time.Date(2026, 8, 25, 18, 0, 0, 0, time.UTC)

	in := []task.Task{
		{ID: 1, Title: "with deadline", Priority: 5, Status: task.StatusNew, Deadline: &deadline, CreatedAt: created},
		{ID: 2, Title: "without deadline", Priority: 1, Status: task.StatusDone, Deadline: nil, CreatedAt: created},
	}

	require.NoError(t, f.Save(in))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, "with deadline", out[0].Title)
	assert.Equal(t, 5, out[0].Priority)
	assert.Equal(t, task.StatusNew, out[0].Status)
	require.NotNil(t, out[0].Deadline)
	assert.True(t, out[0].Deadline.Equal(deadline))
	assert.True(t, out[0].CreatedAt.Equal(created))

	assert.Equal(t, int64(2), out[1].ID)
	assert.Equal(t, task.StatusDone, out[1].Status)
	assert.Nil(t, out[1].Deadline)
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.parquet")
	f := storage.NewFile(path)

	created := time.Now()
	require.NoError(t, f.Save([]task.Task{
		{ID: 1, Title: "a", Priority: 3, Status: task.StatusNew, CreatedAt: created},
		{ID: 2, Title: "b", Priority: 3, Status: task.StatusNew, CreatedAt: created},
	}))
	require.NoError(t, f.Save([]task.Task{
		{ID: 2, Title: "b", Priority: 3, Status: task.StatusDone, CreatedAt: created},
	}))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, task.StatusDone, out[0].Status)
}

func TestSave_EmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.parquet")
	f := storage.NewFile(path)

	require.NoError(t, f.Save(nil))

	out, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSave_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.parquet")
	f := storage.NewFile(path)

	require.NoError(t, f.Save([]task.Task{
		{ID: 1, Title: "a", Priority: 3, Status: task.StatusNew, CreatedAt: time.Now()},
	}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.parquet")
	f := storage.NewFile(path)

	require.NoError(t, f.Save([]task.Task{
		{ID: 1, Title: "a", Priority: 3, Status: task.StatusNew, CreatedAt: time.Now()},
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.Contains(entry.Name(), ".tmp."), "temp file should be cleaned up: %s", entry.Name())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &storage.Error{Op: "write", Path: "/tmp/tasks.parquet", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "/tmp/tasks.parquet")
}
