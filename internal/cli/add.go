package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padlab/taskpad/internal/task"
)

var (
	addPriority int
	addDeadline string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long:  `Add a new task with the given title. The task starts in status "new" and gets the next free id.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deadline, err := task.ParseDeadline(addDeadline)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.Add(args[0], addPriority, deadline)
		if err != nil {
			return err
		}

		fmt.Printf("Task %d added: %q (priority %d)\n", t.ID, t.Title, t.Priority)
		return nil
	},
}

func init() {
	addCmd.Flags().IntVarP(&addPriority, "priority", "p", 3, "Priority from 1 (lowest) to 5 (highest)")
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "", "Deadline as YYYY-MM-DD or \"YYYY-MM-DD HH:MM\"")
}
