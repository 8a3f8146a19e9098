package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importReplace bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the task list to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := current.svc.Export(args[0])
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", n, args[0])

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Read tasks from a JSON file",
	Long: `Append the tasks in a JSON file (an array of task objects, as written by
export) to the list. With --replace the list is overwritten instead. Use -
to read from standard input.

Imported tasks keep their creation and tracked time. Tasks without an id, or
with one already in use, get a new id.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			n   int
			err error
		)

		if args[0] == "-" {
			n, err = current.svc.ImportFrom(cmd.InOrStdin(), importReplace)
		} else {
			n, err = current.svc.Import(args[0], importReplace)
		}

		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks from %s\n", n, args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Replace the list instead of appending")
}
