package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/taskr/internal/core"
	"github.com/inovacc/taskr/internal/model"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) Title() string {
	return i.task.ProjectName
}

func (i taskItem) Description() string {
	desc := i.task.TaskDescription
	if desc == "" {
		desc = "(no description)"
	}

	if created := formatCreated(i.task); created != "-" {
		desc = fmt.Sprintf("%s | Created: %s", desc, created)
	}

	if tracked := formatTracked(i.task); tracked != "-" {
		desc = fmt.Sprintf("%s | Tracked: %s", desc, tracked)
	}

	return desc
}

func (i taskItem) FilterValue() string {
	return i.task.ProjectName + " " + i.task.TaskDescription
}

// storeChangedMsg reports that the store file changed on disk.
type storeChangedMsg struct{}

// tasksLoadedMsg carries a freshly loaded list.
type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

// BoardModel lists tasks and hosts the edit modal.
type BoardModel struct {
	svc     *core.Service
	list    list.Model
	edit    *EditModel
	changes <-chan struct{}
	status  string
	width   int
	height  int

	Err error
}

// NewBoard loads the task list and returns a board over it. changes may be
// nil; when set, every receive triggers a reload.
func NewBoard(svc *core.Service, changes <-chan struct{}) (*BoardModel, error) {
	tasks, err := svc.List()
	if err != nil {
		return nil, err
	}

	l := list.New(toItems(tasks), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Tasks"
	l.AdditionalShortHelpKeys = boardHelpKeys
	l.AdditionalFullHelpKeys = boardHelpKeys

	return &BoardModel{
		svc:     svc,
		list:    l,
		changes: changes,
	}, nil
}

func toItems(tasks []model.Task) []list.Item {
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = taskItem{task: t}
	}

	return items
}

func (m *BoardModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}

	ch := m.changes

	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}

		return storeChangedMsg{}
	}
}

func (m *BoardModel) reload() tea.Cmd {
	svc := m.svc

	return func() tea.Msg {
		tasks, err := svc.List()
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m *BoardModel) Init() tea.Cmd {
	return m.waitForChange()
}

func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case editClosedMsg:
		m.edit = nil

		if msg.committed {
			m.status = successStyle.Render("✓ Task updated")
			return m, m.setTasks(msg.tasks)
		}

		m.status = ""

		return m, nil

	case storeChangedMsg:
		return m, tea.Batch(m.reload(), m.waitForChange())

	case tasksLoadedMsg:
		if msg.err != nil {
			m.Err = msg.err
			m.status = errorStyle.Render("✗ " + msg.err.Error())

			return m, nil
		}

		m.Err = nil

		return m, m.setTasks(msg.tasks)
	}

	if m.edit != nil {
		_, cmd := m.edit.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "e", "enter":
			return m, m.openEditor()

		case "d":
			return m, m.removeSelected()

		case "r":
			m.status = ""
			return m, m.reload()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

// setTasks replaces the list items and, if the modal is open, points it at
// the refreshed copy of its task.
func (m *BoardModel) setTasks(tasks []model.Task) tea.Cmd {
	cmd := m.list.SetItems(toItems(tasks))

	if m.edit != nil {
		for _, t := range tasks {
			if t.ID == m.edit.TargetID() {
				m.edit.Reseed(t)
				break
			}
		}
	}

	return cmd
}

func (m *BoardModel) selected() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}

	return item.task, true
}

func (m *BoardModel) openEditor() tea.Cmd {
	task, ok := m.selected()
	if !ok {
		return nil
	}

	ed, err := m.svc.Editor(task.ID)
	if err != nil {
		m.status = errorStyle.Render("✗ " + err.Error())
		return nil
	}

	m.status = ""
	m.edit = NewEditModel(ed, false)

	return m.edit.Init()
}

func (m *BoardModel) removeSelected() tea.Cmd {
	task, ok := m.selected()
	if !ok {
		return nil
	}

	if _, err := m.svc.Remove(task.ID); err != nil {
		m.status = errorStyle.Render("✗ " + err.Error())
		return nil
	}

	m.status = successStyle.Render("✓ Removed " + task.ProjectName)

	return m.reload()
}

func (m *BoardModel) View() string {
	if m.edit != nil {
		modal := m.edit.View()
		if m.width == 0 || m.height == 0 {
			return docStyle.Render(modal)
		}

		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	view := m.list.View()
	if m.status != "" {
		view += "\n" + m.status
	}

	return docStyle.Render(view)
}
