package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		t, err := store.Delete(id)
		if err != nil {
			return err
		}

		fmt.Printf("Task %d (%q) deleted\n", t.ID, t.Title)
		return nil
	},
}
