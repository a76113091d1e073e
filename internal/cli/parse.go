package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/padlab/taskpad/internal/task"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &task.ValidationError{
			Field:  "id",
			Reason: fmt.Sprintf("%q is not a task id", raw),
		}
	}
	return id, nil
}

func parsePriority(raw string) (int, error) {
	p, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &task.ValidationError{
			Field:  "priority",
			Reason: fmt.Sprintf("%q is not a number", raw),
		}
	}
	if err := task.ValidatePriority(p); err != nil {
		return 0, err
	}
	return p, nil
}

func parseSort(raw string) (task.SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return task.SortNone, nil
	case "deadline":
		return task.SortDeadline, nil
	case "priority":
		return task.SortPriority, nil
	default:
		return task.SortNone, &task.ValidationError{
			Field:  "sort",
			Reason: fmt.Sprintf("unknown sort %q, use \"deadline\" or \"priority\"", raw),
		}
	}
}
