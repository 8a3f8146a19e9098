package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track <id> <duration>",
	Short: "Add tracked time to a task",
	Long: `Add time spent to a task. The duration uses Go syntax, for example 25m,
1h30m or 90s, and must be positive.`,
	Example: `  taskr track 3f2a 25m`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := time.ParseDuration(args[1])
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[1], err)
		}

		task, err := current.svc.Track(args[0], d)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tracked %s on %s, total %s\n",
			d, task.ProjectName, task.Elapsed().Round(time.Second))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}
