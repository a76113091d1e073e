// Package task implements the task collection: the Task model, the
// Store that owns the in-memory table, and the views derived from it
// at display time.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Task is one trackable unit of work.
type Task struct {
	ID        int64
	Title     string
	Priority  int
	Status    Status
	Deadline  *time.Time
	CreatedAt time.Time
}

// Status is the lifecycle state of a task. Any status may move to any
// other status; there is no transition graph.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusAbandoned  Status = "abandoned"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusNew, StatusInProgress, StatusDone, StatusAbandoned}

// Closed reports whether the task no longer counts toward deadlines.
func (s Status) Closed() bool {
	return s == StatusDone || s == StatusAbandoned
}

func (s Status) valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus validates a raw status string from user input.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !s.valid() {
		return "", &ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("unknown status %q, valid values: %s", raw, statusList()),
		}
	}
	return s, nil
}

func statusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Priority bounds. 1 is the lowest priority, 5 the highest.
const (
	MinPriority = 1
	MaxPriority = 5
)

// ValidatePriority checks that a priority is within bounds.
func ValidatePriority(p int) error {
	if p < MinPriority || p > MaxPriority {
		return &ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%d is out of range, must be between %d and %d", p, MinPriority, MaxPriority),
		}
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return nil
}

// Deadline layouts accepted from user input, parsed in local time.
const (
	DateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseDeadline parses an optional deadline string. An empty string
// means no deadline.
func ParseDeadline(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{dateTimeLayout, DateLayout} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, nil
		}
	}

	return nil, &ValidationError{
		Field:  "deadline",
		Reason: fmt.Sprintf("cannot parse %q, use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"", raw),
	}
}
