package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addProject     string
	addDescription string
)

var addCmd = &cobra.Command{
	Use:   "add [project] [description]",
	Short: "Add a task",
	Long: `Append a new task to the list. The project name is required; the
creation time is set to now and tracked time starts at zero.

The project and description can be given as arguments or flags.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, description := addProject, addDescription
		if len(args) > 0 {
			project = args[0]
		}

		if len(args) > 1 {
			description = args[1]
		}

		task, err := current.svc.Add(project, description)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added: %s (%s)\n", task.ProjectName, task.ID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addProject, "project", "p", "", "Project name")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
}
