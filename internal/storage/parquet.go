// Package storage persists the task table as a single parquet file.
// The file is the sole copy of the data; it is read whole at startup
// and rewritten whole after every mutation.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/padlab/taskpad/internal/task"
)

// record is the parquet row schema: typed columns for every task
// field, with a nullable timestamp for the deadline.
type record struct {
	ID        int64      `parquet:"id"`
	Title     string     `parquet:"title"`
	Priority  int32      `parquet:"priority"`
	Status    string     `parquet:"status,enum"`
	Deadline  *time.Time `parquet:"deadline,optional,timestamp"`
	CreatedAt time.Time  `parquet:"created_at,timestamp"`
}

func toRecord(t task.Task) record {
	return record{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  int32(t.Priority),
		Status:    string(t.Status),
		Deadline:  t.Deadline,
		CreatedAt: t.CreatedAt,
	}
}

func (r record) toTask() task.Task {
	return task.Task{
		ID:        r.ID,
		Title:     r.Title,
		Priority:  int(r.Priority),
		Status:    task.Status(r.Status),
		Deadline:  r.Deadline,
		CreatedAt: r.CreatedAt,
	}
}

// Error wraps a failed read or write of the store file.
type Error struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// File is a parquet-backed task.Repository rooted at a single path.
type File struct {
	path string
}

// NewFile returns a File that reads and writes the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the location of the store file.
func (f *File) Path() string {
	return f.path
}

// Load reads the whole task table. A missing file is an empty
// collection; an unreadable or corrupt file is an *Error.
func (f *File) Load() ([]task.Task, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return nil, nil
	}

	records, err := parquet.ReadFile[record](f.path)
	if err != nil {
		return nil, &Error{Op: "read", Path: f.path, Err: err}
	}

	tasks := make([]task.Task, len(records))
	for i, r := range records {
		tasks[i] = r.toTask()
	}
	return tasks, nil
}

// Save rewrites the whole task table atomically: the new table is
// written to a temp file in the same directory and renamed over the
// old one.
func (f *File) Save(tasks []task.Task) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &Error{Op: "write", Path: f.path, Err: err}
		}
	}

	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", f.path, os.Getpid())
	if err := parquet.WriteFile(tmpPath, records); err != nil {
		os.Remove(tmpPath)
		return &Error{Op: "write", Path: f.path, Err: err}
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return &Error{Op: "write", Path: f.path, Err: err}
	}

	return nil
}
