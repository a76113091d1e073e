package cli

import (
	"github.com/spf13/cobra"

	"github.com/padlab/taskpad/internal/config"
	"github.com/padlab/taskpad/internal/logging"
	"github.com/padlab/taskpad/internal/storage"
	"github.com/padlab/taskpad/internal/task"
	"github.com/padlab/taskpad/internal/version"
)

var (
	flagFile    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:          "taskpad",
	Short:        "Personal task tracker backed by a local parquet file",
	Long:         `Taskpad tracks personal tasks in a single local parquet file. Each command loads the file, applies the operation and writes the file back.`,
	Version:      version.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "Path to the task file (overrides TASKPAD_FILE and config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(
		addCmd,
		listCmd,
		updateStatusCmd,
		updatePriorityCmd,
		updateDeadlineCmd,
		deleteCmd,
		statsCmd,
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStore resolves configuration and loads the task collection.
func openStore() (*task.Store, error) {
	cfg, err := config.Load(flagFile)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(flagVerbose)
	if err != nil {
		return nil, err
	}

	return task.Open(storage.NewFile(cfg.File), task.WithLogger(log))
}
