package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/padlab/taskpad/internal/task"
)

var updateStatusCmd = &cobra.Command{
	Use:   "update-status <id> <status>",
	Short: "Change a task's status",
	Long:  `Change a task's status. Valid statuses are new, in_progress, done and abandoned; any status may move to any other.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		status, err := task.ParseStatus(args[1])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.UpdateStatus(id, status)
		if err != nil {
			return err
		}

		fmt.Printf("Task %d (%q) status set to %s\n", t.ID, t.Title, t.Status)
		return nil
	},
}

var updatePriorityCmd = &cobra.Command{
	Use:   "update-priority <id> <priority>",
	Short: "Change a task's priority",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		priority, err := parsePriority(args[1])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.UpdatePriority(id, priority)
		if err != nil {
			return err
		}

		fmt.Printf("Task %d (%q) priority set to %d\n", t.ID, t.Title, t.Priority)
		return nil
	},
}

var updateDeadlineClear bool

var updateDeadlineCmd = &cobra.Command{
	Use:   "update-deadline <id> [deadline]",
	Short: "Change or clear a task's deadline",
	Long:  `Set a task's deadline to the given date, or remove it with --clear.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if updateDeadlineClear && len(args) == 2 {
			return &task.ValidationError{Field: "deadline", Reason: "cannot combine --clear with a deadline value"}
		}
		if !updateDeadlineClear && len(args) < 2 {
			return &task.ValidationError{Field: "deadline", Reason: "provide a deadline or pass --clear"}
		}

		var deadline *time.Time
		if len(args) == 2 {
			deadline, err = task.ParseDeadline(args[1])
			if err != nil {
				return err
			}
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.UpdateDeadline(id, deadline)
		if err != nil {
			return err
		}

		if t.Deadline == nil {
			fmt.Printf("Task %d (%q) deadline cleared\n", t.ID, t.Title)
		} else {
			fmt.Printf("Task %d (%q) deadline set to %s\n", t.ID, t.Title, t.Deadline.Format(task.DateLayout))
		}
		return nil
	},
}

func init() {
	updateDeadlineCmd.Flags().BoolVar(&updateDeadlineClear, "clear", false, "Remove the task's deadline")
}
