package task

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an id that is
// not in the collection. Callers match it with errors.Is.
var ErrNotFound = errors.New("task not found")

// ValidationError describes rejected user input: an out-of-range
// priority, an empty title, or an unknown status.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func notFound(id int64) error {
	return fmt.Errorf("task %d: %w", id, ErrNotFound)
}
