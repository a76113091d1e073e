package task

import "sort"

// SortKey selects the ordering of List results.
type SortKey int

const (
	// SortNone keeps insertion order.
	SortNone SortKey = iota
	// SortDeadline orders by deadline ascending, tasks without a
	// deadline last.
	SortDeadline
	// SortPriority orders by priority descending.
	SortPriority
)

// ListOptions narrows and orders the tasks returned by List. Nil
// filter fields are ignored.
type ListOptions struct {
	Status      *Status
	Priority    *int // exact match
	MinPriority *int // inclusive threshold
	Sort        SortKey
}

// View is a task augmented with its display-time deadline flag.
type View struct {
	Task
	Flag Flag
}

// List returns filtered, sorted views over the collection. It never
// mutates the collection.
func (s *Store) List(opts ListOptions) []View {
	now := s.now()

	views := make([]View, 0, len(s.tasks))
	for _, t := range s.tasks {
		if opts.Status != nil && t.Status != *opts.Status {
			continue
		}
		if opts.Priority != nil && t.Priority != *opts.Priority {
			continue
		}
		if opts.MinPriority != nil && t.Priority < *opts.MinPriority {
			continue
		}
		views = append(views, View{Task: t, Flag: DeadlineFlag(t, now)})
	}

	switch opts.Sort {
	case SortDeadline:
		sort.SliceStable(views, func(i, j int) bool {
			a, b := views[i].Deadline, views[j].Deadline
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortPriority:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Priority > views[j].Priority
		})
	}

	return views
}
