package cmd

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/inovacc/taskr/internal/cli"
	"github.com/inovacc/taskr/internal/core"
	"github.com/inovacc/taskr/internal/model"
)

var (
	editProject     string
	editDescription string
	editSet         []string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task's project name or description",
	Long: `Edit one task. The id may be abbreviated to any unique prefix of at least
four characters.

Without flags an edit form opens, seeded with the task's current values.
With --project, --description or --set field=value the change is applied
directly. Creation time and tracked time are never changed by an edit.`,
	Example: `  taskr edit 3f2a --project "Website"
  taskr edit 3f2a --set taskDescription="Fix the footer"
  taskr edit 3f2a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := current.svc.Editor(args[0])
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("project") && !flags.Changed("description") && len(editSet) == 0 {
			if !isTerminal(cmd.OutOrStdout()) {
				return errors.New("no changes given; pass --project, --description or --set, or run in a terminal")
			}

			return runEditForm(cmd, ed)
		}

		ed.Open()

		if flags.Changed("project") {
			_ = ed.UpdateField(model.FieldProjectName, editProject)
		}

		if flags.Changed("description") {
			_ = ed.UpdateField(model.FieldTaskDescription, editDescription)
		}

		for _, kv := range editSet {
			if err := applySet(ed, kv); err != nil {
				return err
			}
		}

		tasks, err := ed.Commit()
		if err != nil {
			return err
		}

		return reportUpdated(cmd, ed.Target(), len(tasks))
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editProject, "project", "p", "", "New project name")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New task description")
	editCmd.Flags().StringArrayVar(&editSet, "set", nil, "Set a field, as field=value (repeatable)")
}

func applySet(ed *core.Editor, kv string) error {
	name, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("invalid --set %q: want field=value", kv)
	}

	field, err := model.ParseField(name)
	if err != nil {
		return err
	}

	return ed.UpdateField(field, value)
}

func runEditForm(cmd *cobra.Command, ed *core.Editor) error {
	m := cli.NewEditModel(ed, true)

	if _, err := tea.NewProgram(m).Run(); err != nil {
		return err
	}

	if !m.Committed {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Edit cancelled.")
		return nil
	}

	return reportUpdated(cmd, ed.Target(), len(m.Tasks))
}

func reportUpdated(cmd *cobra.Command, task model.Task, total int) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s (%s), %d tasks saved\n", task.ProjectName, task.ID, total)
	return err
}
