package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/padlab/taskpad/internal/task"
)

var (
	listStatus      string
	listPriority    int
	listMinPriority int
	listSort        string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long:  `List tasks with optional status and priority filters. Open tasks with a deadline are flagged OVERDUE or SOON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts task.ListOptions

		if listStatus != "" {
			status, err := task.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			opts.Status = &status
		}
		if cmd.Flags().Changed("priority") {
			if err := task.ValidatePriority(listPriority); err != nil {
				return err
			}
			opts.Priority = &listPriority
		}
		if cmd.Flags().Changed("min-priority") {
			if err := task.ValidatePriority(listMinPriority); err != nil {
				return err
			}
			opts.MinPriority = &listMinPriority
		}

		sortKey, err := parseSort(listSort)
		if err != nil {
			return err
		}
		opts.Sort = sortKey

		store, err := openStore()
		if err != nil {
			return err
		}

		views := store.List(opts)
		if len(views) == 0 {
			fmt.Println("No tasks.")
			return nil
		}

		return renderTasks(os.Stdout, views)
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (new, in_progress, done, abandoned)")
	listCmd.Flags().IntVar(&listPriority, "priority", 0, "Filter by exact priority")
	listCmd.Flags().IntVar(&listMinPriority, "min-priority", 0, "Filter by minimum priority")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by \"deadline\" (ascending, no deadline last) or \"priority\" (descending)")
}
