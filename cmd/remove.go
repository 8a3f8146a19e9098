package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a task",
	Long: `Remove one task from the list. The order of the remaining tasks is kept.
The id may be abbreviated to any unique prefix of at least four characters.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task, err := current.svc.Remove(args[0])
		if err != nil {
			return fmt.Errorf("failed to remove task: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed: %s (%s)\n", task.ProjectName, task.ID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
