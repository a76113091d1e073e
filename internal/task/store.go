package task

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// Repository loads and saves the full task table. The collection is
// always written back whole; there is no incremental persistence.
type Repository interface {
	Load() ([]Task, error)
	Save([]Task) error
}

// Store owns the in-memory task collection and persists it through a
// Repository after every mutation. It is not safe for concurrent use;
// taskpad is a single-user, single-process tool.
type Store struct {
	repo  Repository
	tasks []Task
	now   func() time.Time
	log   *zap.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces the time source, mainly for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(log *zap.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// Open loads the collection through repo. A missing store file yields
// an empty collection.
func Open(repo Repository, opts ...StoreOption) (*Store, error) {
	s := &Store{
		repo: repo,
		now:  time.Now,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := repo.Load()
	if err != nil {
		return nil, err
	}
	s.tasks = tasks

	s.log.Debug("loaded task collection", zap.Int("tasks", len(tasks)))
	return s, nil
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add validates the input, appends a new task and persists the
// collection. The new task gets the next free id, status new and the
// current time as creation timestamp.
func (s *Store) Add(title string, priority int, deadline *time.Time) (Task, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return Task{}, err
	}
	if err := ValidatePriority(priority); err != nil {
		return Task{}, err
	}

	t := Task{
		ID:        s.nextID(),
		Title:     title,
		Priority:  priority,
		Status:    StatusNew,
		Deadline:  deadline,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, t)

	if err := s.persist(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return Task{}, err
	}

	s.log.Debug("task added",
		zap.Int64("id", t.ID),
		zap.String("title", t.Title),
		zap.Int("priority", t.Priority))
	return t, nil
}

// UpdateStatus sets a new status on an existing task and persists.
func (s *Store) UpdateStatus(id int64, status Status) (Task, error) {
	if !status.valid() {
		return Task{}, &ValidationError{
			Field:  "status",
			Reason: "unknown status " + string(status),
		}
	}
	return s.update(id, func(t *Task) {
		t.Status = status
	})
}

// UpdatePriority sets a new priority on an existing task and persists.
func (s *Store) UpdatePriority(id int64, priority int) (Task, error) {
	if err := ValidatePriority(priority); err != nil {
		return Task{}, err
	}
	return s.update(id, func(t *Task) {
		t.Priority = priority
	})
}

// UpdateDeadline sets or clears the deadline of an existing task and
// persists. A nil deadline clears it.
func (s *Store) UpdateDeadline(id int64, deadline *time.Time) (Task, error) {
	return s.update(id, func(t *Task) {
		t.Deadline = deadline
	})
}

// Delete removes a task from the collection and persists.
func (s *Store) Delete(id int64) (Task, error) {
	idx := s.find(id)
	if idx < 0 {
		return Task{}, notFound(id)
	}

	removed := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)

	if err := s.persist(); err != nil {
		s.tasks = append(s.tasks[:idx], append([]Task{removed}, s.tasks[idx:]...)...)
		return Task{}, err
	}

	s.log.Debug("task deleted", zap.Int64("id", removed.ID), zap.String("title", removed.Title))
	return removed, nil
}

func (s *Store) update(id int64, mutate func(*Task)) (Task, error) {
	idx := s.find(id)
	if idx < 0 {
		return Task{}, notFound(id)
	}

	before := s.tasks[idx]
	mutate(&s.tasks[idx])

	if err := s.persist(); err != nil {
		s.tasks[idx] = before
		return Task{}, err
	}

	s.log.Debug("task updated", zap.Int64("id", id))
	return s.tasks[idx], nil
}

func (s *Store) find(id int64) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID returns max existing id + 1, or 1 for an empty collection.
func (s *Store) nextID() int64 {
	var max int64
	for i := range s.tasks {
		if s.tasks[i].ID > max {
			max = s.tasks[i].ID
		}
	}
	return max + 1
}

func (s *Store) persist() error {
	return s.repo.Save(s.tasks)
}
