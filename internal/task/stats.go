package task

import "math"

// StatusCount is the number of tasks in one status and its share of
// the total.
type StatusCount struct {
	Status  Status
	Count   int
	Percent int
}

// PriorityCount is the number of tasks at one priority level.
type PriorityCount struct {
	Priority int
	Count    int
}

// Stats summarizes the whole collection. Percentages are rounded
// independently per status, so they may not sum to exactly 100.
type Stats struct {
	Total      int
	ByStatus   []StatusCount   // display order, statuses with zero tasks omitted
	ByPriority []PriorityCount // highest priority first, empty levels omitted
	Overdue    []Task          // deadline at or before now, task still open
}

// Statistics computes aggregate counts over the full collection. An
// empty collection yields Total == 0 and empty breakdowns.
func (s *Store) Statistics() Stats {
	stats := Stats{Total: len(s.tasks)}
	if stats.Total == 0 {
		return stats
	}

	for _, status := range Statuses {
		count := 0
		for i := range s.tasks {
			if s.tasks[i].Status == status {
				count++
			}
		}
		if count == 0 {
			continue
		}
		stats.ByStatus = append(stats.ByStatus, StatusCount{
			Status:  status,
			Count:   count,
			Percent: int(math.Round(float64(count) / float64(stats.Total) * 100)),
		})
	}

	for p := MaxPriority; p >= MinPriority; p-- {
		count := 0
		for i := range s.tasks {
			if s.tasks[i].Priority == p {
				count++
			}
		}
		if count == 0 {
			continue
		}
		stats.ByPriority = append(stats.ByPriority, PriorityCount{Priority: p, Count: count})
	}

	now := s.now()
	for _, t := range s.tasks {
		if DeadlineFlag(t, now) == FlagOverdue {
			stats.Overdue = append(stats.Overdue, t)
		}
	}

	return stats
}
