package cli

import "github.com/charmbracelet/bubbles/key"

var (
	keyEdit    = key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit"))
	keyDelete  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	keyRefresh = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
)

func boardHelpKeys() []key.Binding {
	return []key.Binding{keyEdit, keyDelete, keyRefresh}
}
