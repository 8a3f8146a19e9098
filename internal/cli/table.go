package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/inovacc/taskr/internal/model"
)

const (
	shortIDLen     = 8
	maxProjectCol  = 24
	maxDescription = 60
)

var tableHeader = []string{"ID", "PROJECT", "CREATED", "TRACKED", "DESCRIPTION"}

// RenderTable writes tasks as an aligned plain-text table. Widths are
// measured in terminal cells so wide runes line up.
func RenderTable(w io.Writer, tasks []model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks.")
		return err
	}

	rows := make([][]string, 0, len(tasks)+1)
	rows = append(rows, tableHeader)

	for _, t := range tasks {
		rows = append(rows, []string{
			ShortID(t.ID),
			runewidth.Truncate(t.ProjectName, maxProjectCol, "…"),
			formatCreated(t),
			formatTracked(t),
			runewidth.Truncate(firstLine(t.TaskDescription), maxDescription, "…"),
		})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var b strings.Builder

		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}

			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}

		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}

	return nil
}

// ShortID returns the leading part of an id used in listings.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}

	return id[:shortIDLen]
}

// formatCreated and formatTracked fall back to the stored text for values
// written by other clients, such as a locale date string.
func formatCreated(t model.Task) string {
	if created := t.CreatedAt(); !created.IsZero() {
		return created.Format("2006-01-02 15:04")
	}

	return storedText(t.Timestamp)
}

func formatTracked(t model.Task) string {
	if elapsed := t.Elapsed(); elapsed > 0 {
		return elapsed.Round(time.Second).String()
	}

	return storedText(t.Duration)
}

func storedText(v model.Value) string {
	if _, numeric := v.Int64(); numeric || !v.IsSet() {
		return "-"
	}

	return v.Text()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
