package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inovacc/taskr/internal/core"
	"github.com/inovacc/taskr/internal/model"
)

const (
	focusProject = iota
	focusDescription
	focusButton
	focusCount
)

// editClosedMsg is sent when the edit modal closes. Tasks holds the
// persisted list after a successful commit and is nil after a cancel.
type editClosedMsg struct {
	committed bool
	tasks     []model.Task
}

// EditModel is the edit-task modal. It mirrors every keystroke into a
// core.Editor and commits through it.
type EditModel struct {
	editor     *core.Editor
	project    textinput.Model
	desc       textarea.Model
	focusIndex int
	standalone bool

	Err       error
	Committed bool
	Tasks     []model.Task
}

// NewEditModel opens ed and returns a modal bound to it. A standalone modal
// quits the program when it closes; an embedded one reports back to the
// board with an editClosedMsg.
func NewEditModel(ed *core.Editor, standalone bool) *EditModel {
	ed.Open()

	project := textinput.New()
	project.Placeholder = "Project Name"
	project.CharLimit = 256
	project.Width = 48
	project.Cursor.Style = cursorStyle

	desc := textarea.New()
	desc.Placeholder = "Task Description"
	desc.CharLimit = 2000
	desc.ShowLineNumbers = false
	desc.SetWidth(50)
	desc.SetHeight(5)

	m := &EditModel{
		editor:     ed,
		project:    project,
		desc:       desc,
		standalone: standalone,
	}

	m.loadBuffer()
	m.setFocus(focusProject)

	return m
}

// Reseed points the editor at a newer version of its task, as seen after a
// refresh, and reloads the inputs if the buffer changed.
func (m *EditModel) Reseed(task model.Task) {
	before := m.editor.Buffer()
	m.editor.Seed(task)

	if m.editor.Buffer() != before {
		m.loadBuffer()
	}
}

// TargetID returns the id of the task being edited.
func (m *EditModel) TargetID() string {
	return m.editor.Target().ID
}

func (m *EditModel) loadBuffer() {
	buf := m.editor.Buffer()
	m.project.SetValue(buf.ProjectName)
	m.desc.SetValue(buf.TaskDescription)
}

func (m *EditModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.editor.Cancel()
			return m, m.close()

		case "ctrl+s":
			return m, m.commit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				m.setFocus((m.focusIndex + 1) % focusCount)
			} else {
				m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
			}

			return m, nil

		case "enter":
			switch m.focusIndex {
			case focusButton:
				return m, m.commit()
			case focusProject:
				m.setFocus(focusDescription)
				return m, nil
			}
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *EditModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds [2]tea.Cmd

	// Only the focused input reacts to key presses.
	m.project, cmds[0] = m.project.Update(msg)
	m.desc, cmds[1] = m.desc.Update(msg)

	buf := m.editor.Buffer()

	if v := m.project.Value(); v != buf.ProjectName {
		_ = m.editor.UpdateField(model.FieldProjectName, v)
	}

	if v := m.desc.Value(); v != buf.TaskDescription {
		_ = m.editor.UpdateField(model.FieldTaskDescription, v)
	}

	return tea.Batch(cmds[:]...)
}

func (m *EditModel) setFocus(i int) {
	m.focusIndex = i

	m.project.Blur()
	m.project.PromptStyle = noStyle
	m.project.TextStyle = noStyle
	m.desc.Blur()

	switch i {
	case focusProject:
		m.project.Focus()
		m.project.PromptStyle = focusedStyle
		m.project.TextStyle = focusedStyle
	case focusDescription:
		m.desc.Focus()
	}
}

// commit runs synchronously: the editor is not safe to share with a
// background command while keystrokes keep arriving.
func (m *EditModel) commit() tea.Cmd {
	tasks, err := m.editor.Commit()
	if err != nil {
		m.Err = err

		var verr *core.ValidationError
		if errors.As(err, &verr) && verr.Field == model.FieldProjectName.String() {
			m.setFocus(focusProject)
		}

		return nil
	}

	m.Err = nil
	m.Committed = true
	m.Tasks = tasks

	return m.close()
}

func (m *EditModel) close() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}

	msg := editClosedMsg{committed: m.Committed, tasks: m.Tasks}

	return func() tea.Msg { return msg }
}

func (m *EditModel) View() string {
	if m.standalone && m.Committed {
		return successStyle.Render("\n  ✓ Task updated\n\n")
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Edit Task"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("PROJECT NAME"), m.project.View()))
	b.WriteString(fmt.Sprintf(fmtField, blurredStyle.Render("TASK DESCRIPTION"), m.desc.View()))

	button := blurredButton
	if m.focusIndex == focusButton {
		button = focusedButton
	}

	b.WriteString(" " + button + "\n")

	if m.Err != nil {
		b.WriteString("\n" + errorStyle.Render(" ✗ "+describeError(m.Err)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(" tab: next field • enter on button / ctrl+s: save • esc: cancel"))

	return modalStyle.Render(b.String())
}

// describeError turns commit errors into the text shown in the modal.
func describeError(err error) string {
	var (
		verr *core.ValidationError
		nf   *core.NotFoundError
		serr *core.StorageError
	)

	switch {
	case errors.As(err, &verr):
		if verr.Field == model.FieldProjectName.String() {
			return "Project Name: " + verr.Message
		}

		return verr.Error()
	case errors.As(err, &nf):
		return "This task no longer exists; it may have been deleted elsewhere"
	case errors.As(err, &serr):
		return "Could not save: " + serr.Err.Error()
	default:
		return err.Error()
	}
}
