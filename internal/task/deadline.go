package task

import "time"

// Flag classifies a task's deadline urgency at display time. Flags are
// never persisted.
type Flag int

const (
	FlagNone Flag = iota
	FlagSoon
	FlagOverdue
)

func (f Flag) String() string {
	switch f {
	case FlagSoon:
		return "SOON"
	case FlagOverdue:
		return "OVERDUE"
	default:
		return ""
	}
}

// soonWindow is how far ahead a deadline still counts as SOON.
const soonWindow = 72 * time.Hour

// DeadlineFlag classifies a task's deadline relative to now. Tasks
// without a deadline and done/abandoned tasks are never flagged. A
// deadline equal to now is already OVERDUE; a deadline exactly on the
// three-day line is still SOON.
func DeadlineFlag(t Task, now time.Time) Flag {
	if t.Deadline == nil || t.Status.Closed() {
		return FlagNone
	}
	d := *t.Deadline
	if !d.After(now) {
		return FlagOverdue
	}
	if !d.After(now.Add(soonWindow)) {
		return FlagSoon
	}
	return FlagNone
}
