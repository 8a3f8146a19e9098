package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/taskr/internal/core"
	"github.com/inovacc/taskr/internal/model"
	"github.com/inovacc/taskr/internal/store"
)

var seedTasks = []model.Task{
	{ID: "aaaa-1111", ProjectName: "Alpha", TaskDescription: "first", Timestamp: model.Millis(100), Duration: model.Millis(5)},
	{ID: "bbbb-2222", ProjectName: "Beta", TaskDescription: "second", Timestamp: model.Millis(200), Duration: model.Millis(0)},
}

func newTestService(t *testing.T) (*core.Service, store.Store) {
	t.Helper()

	s := store.NewMemory()
	require.NoError(t, s.SaveTasks(seedTasks))

	return core.NewService(s, slog.New(slog.NewTextHandler(io.Discard, nil))), s
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newEditModel(t *testing.T, ref string, standalone bool) (*EditModel, store.Store) {
	t.Helper()

	svc, s := newTestService(t)
	ed, err := svc.Editor(ref)
	require.NoError(t, err)

	return NewEditModel(ed, standalone), s
}

func TestEditModelSeedsInputs(t *testing.T) {
	m, _ := newEditModel(t, "aaaa-1111", true)

	assert.True(t, m.editor.IsOpen())
	assert.Equal(t, "Alpha", m.project.Value())
	assert.Equal(t, "first", m.desc.Value())
	assert.Equal(t, focusProject, m.focusIndex)
}

func TestEditModelTypingUpdatesBuffer(t *testing.T) {
	m, _ := newEditModel(t, "aaaa-1111", true)

	m.Update(keyRunes("X"))
	assert.Equal(t, "AlphaX", m.editor.Buffer().ProjectName)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusDescription, m.focusIndex)

	m.Update(keyRunes("!"))
	assert.Equal(t, "first!", m.editor.Buffer().TaskDescription)
	assert.Equal(t, "AlphaX", m.editor.Buffer().ProjectName)
}

func TestEditModelFocusCycles(t *testing.T) {
	m, _ := newEditModel(t, "aaaa-1111", true)

	tests := []struct {
		key  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, focusDescription},
		{tea.KeyMsg{Type: tea.KeyTab}, focusButton},
		{tea.KeyMsg{Type: tea.KeyTab}, focusProject},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, focusButton},
	}

	for _, tt := range tests {
		m.Update(tt.key)
		assert.Equal(t, tt.want, m.focusIndex, "after %s", tt.key)
	}
}

func TestEditModelCommitOnButton(t *testing.T) {
	m, s := newEditModel(t, "aaaa-1111", true)

	m.Update(keyRunes("!"))
	m.setFocus(focusButton)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	require.NoError(t, m.Err)
	assert.True(t, m.Committed)
	assert.False(t, m.editor.IsOpen())

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, model.Task{ID: "aaaa-1111", ProjectName: "Alpha!", TaskDescription: "first", Timestamp: model.Millis(100), Duration: model.Millis(5)}, tasks[0])
	assert.Equal(t, seedTasks[1], tasks[1])
	assert.Equal(t, tasks, m.Tasks)
}

func TestEditModelEmptyProjectStaysOpen(t *testing.T) {
	m, s := newEditModel(t, "aaaa-1111", true)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, "", m.editor.Buffer().ProjectName)

	m.setFocus(focusDescription)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)

	var verr *core.ValidationError
	require.True(t, errors.As(m.Err, &verr))
	assert.True(t, m.editor.IsOpen())
	assert.False(t, m.Committed)
	assert.Equal(t, focusProject, m.focusIndex)
	assert.Contains(t, m.View(), "Project Name: this field is required")

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, seedTasks, tasks)
}

func TestEditModelCancel(t *testing.T) {
	m, s := newEditModel(t, "aaaa-1111", false)

	m.Update(keyRunes("zzz"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg, ok := cmd().(editClosedMsg)
	require.True(t, ok)
	assert.False(t, msg.committed)
	assert.Nil(t, msg.tasks)
	assert.False(t, m.editor.IsOpen())

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, seedTasks, tasks)
}

func TestEditModelReseed(t *testing.T) {
	m, _ := newEditModel(t, "aaaa-1111", false)

	m.Update(keyRunes("?"))

	// Same identifying fields: in-progress edits survive.
	refreshed := seedTasks[0]
	refreshed.Duration = model.Millis(60_000)
	m.Reseed(refreshed)
	assert.Equal(t, "Alpha?", m.project.Value())

	refreshed.ProjectName = "Renamed"
	m.Reseed(refreshed)
	assert.Equal(t, "Renamed", m.project.Value())
	assert.Equal(t, "Renamed", m.editor.Buffer().ProjectName)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation", &core.ValidationError{Field: "projectName", Message: "this field is required"}, "Project Name: this field is required"},
		{"not found", &core.NotFoundError{ID: "x"}, "This task no longer exists; it may have been deleted elsewhere"},
		{"storage", &core.StorageError{Operation: "save", Err: errors.New("disk full")}, "Could not save: disk full"},
		{"other", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}

func newBoard(t *testing.T) (*BoardModel, store.Store) {
	t.Helper()

	svc, s := newTestService(t)

	b, err := NewBoard(svc, nil)
	require.NoError(t, err)

	b.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	return b, s
}

func TestBoardEditAndRefresh(t *testing.T) {
	b, _ := newBoard(t)

	require.Len(t, b.list.Items(), 2)

	b.Update(keyRunes("e"))
	require.NotNil(t, b.edit)
	assert.Equal(t, "aaaa-1111", b.edit.TargetID())
	assert.Contains(t, b.View(), "Edit Task")

	b.Update(keyRunes("+"))

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	b.Update(cmd())
	assert.Nil(t, b.edit)

	item, ok := b.list.Items()[0].(taskItem)
	require.True(t, ok)
	assert.Equal(t, "Alpha+", item.task.ProjectName)
	assert.Contains(t, b.View(), "Task updated")
}

func TestBoardKeysGoToModalWhileOpen(t *testing.T) {
	b, _ := newBoard(t)

	b.Update(keyRunes("e"))
	require.NotNil(t, b.edit)

	b.Update(keyRunes("q"))

	require.NotNil(t, b.edit)
	assert.Equal(t, "Alphaq", b.edit.editor.Buffer().ProjectName)
}

func TestBoardRemove(t *testing.T) {
	b, s := newBoard(t)

	_, cmd := b.Update(keyRunes("d"))
	require.NotNil(t, cmd)

	b.Update(cmd())

	tasks, err := s.LoadTasks()
	require.NoError(t, err)
	assert.Equal(t, seedTasks[1:], tasks)
	require.Len(t, b.list.Items(), 1)
}

func TestBoardReloadsOnStoreChange(t *testing.T) {
	svc, s := newTestService(t)

	changes := make(chan struct{}, 1)

	b, err := NewBoard(svc, changes)
	require.NoError(t, err)

	updated := append([]model.Task(nil), seedTasks...)
	updated[1].ProjectName = "Gamma"
	require.NoError(t, s.SaveTasks(updated))

	changes <- struct{}{}
	msg := b.Init()()
	require.IsType(t, storeChangedMsg{}, msg)

	_, cmd := b.Update(msg)
	require.NotNil(t, cmd)

	b.Update(b.reload()())

	item, ok := b.list.Items()[1].(taskItem)
	require.True(t, ok)
	assert.Equal(t, "Gamma", item.task.ProjectName)

	close(changes)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer

	tasks := []model.Task{
		{ID: "0123456789abcdef", ProjectName: "日本語", TaskDescription: "line one\nline two", Duration: model.Millis(90_000)},
		{ID: "short", ProjectName: "Beta", TaskDescription: "b"},
	}

	require.NoError(t, RenderTable(&buf, tasks))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "01234567  日本語"))
	assert.Contains(t, lines[1], "1m30s")
	assert.Contains(t, lines[1], "line one")
	assert.NotContains(t, lines[1], "line two")

	// Column starts line up in cells even with double-width runes.
	assert.Equal(t, strings.Index(lines[0], "PROJECT"), strings.Index(lines[2], "Beta"))
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderTable(&buf, nil))
	assert.Equal(t, "No tasks.\n", buf.String())
}

func TestRenderTableForeignValues(t *testing.T) {
	var buf bytes.Buffer

	tasks := []model.Task{
		{ID: "x", ProjectName: "A", Timestamp: model.Value(`"3/14/2023"`), Duration: model.Value(`"2 days"`)},
	}

	require.NoError(t, RenderTable(&buf, tasks))
	assert.Contains(t, buf.String(), "3/14/2023")
	assert.Contains(t, buf.String(), "2 days")

	item := taskItem{task: tasks[0]}
	assert.Contains(t, item.Description(), "Created: 3/14/2023")
	assert.Contains(t, item.Description(), "Tracked: 2 days")
}
