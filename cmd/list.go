package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/taskr/internal/cli"
	"github.com/inovacc/taskr/internal/encoding"
	"github.com/inovacc/taskr/internal/watch"
)

var (
	listPlain bool
	listJSON  bool
	listWatch bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the task board",
	Long: `Display all tasks in an interactive board. Press e or Enter to edit the
selected task, d to delete it, r to reload and q to quit. The board reloads
by itself when another taskr process changes the store.

When stdout is not a terminal, or with --plain, a table is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if listJSON {
			return printJSON(out)
		}

		if listPlain || !isTerminal(out) {
			if listWatch {
				return watchTable(cmd.Context(), out)
			}

			return printTable(out)
		}

		return runBoard()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Print a plain table instead of the interactive board")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the task list as JSON")
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "With --plain, reprint the table whenever the store changes")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printJSON(w io.Writer) error {
	tasks, err := current.svc.List()
	if err != nil {
		return err
	}

	data, err := encoding.ToJSON(tasks)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func printTable(w io.Writer) error {
	tasks, err := current.svc.List()
	if err != nil {
		return err
	}

	return cli.RenderTable(w, tasks)
}

func watchTable(ctx context.Context, w io.Writer) error {
	if current.store.Path() == "" {
		return fmt.Errorf("--watch needs a file-backed store, not %s", current.cfg.Store)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fw, err := watch.New(current.store.Path(), watch.DefaultDebounce, current.logger)
	if err != nil {
		return err
	}
	defer func() { _ = fw.Close() }()

	if err := printTable(w); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-fw.Changes():
			if !ok {
				return nil
			}

			_, _ = fmt.Fprintln(w)

			if err := printTable(w); err != nil {
				return err
			}
		}
	}
}

func runBoard() error {
	var changes <-chan struct{}

	if path := current.store.Path(); path != "" {
		fw, err := watch.New(path, watch.DefaultDebounce, current.logger)
		if err != nil {
			current.logger.Warn("store watch disabled", slog.String("error", err.Error()))
		} else {
			defer func() { _ = fw.Close() }()
			changes = fw.Changes()
		}
	}

	m, err := cli.NewBoard(current.svc, changes)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return m.Err
}
