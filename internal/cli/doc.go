// Package cli provides the terminal user interface components for taskr.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - Board: filterable list of tasks; hosts the edit modal and reloads
//     when the store file changes
//   - Edit: modal form over a core.Editor with project name and
//     description inputs and an update button
//   - RenderTable: plain aligned table for non-interactive output
//
// The edit modal commits through the editor and hands the persisted list
// back to the board in an editClosedMsg, which the board uses to refresh
// its items.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
