package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a panel or modal with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// editor is implemented by views that can capture raw keystrokes (search
// boxes, form fields, chat input). While Editing reports true the app skips
// its keybindings and forwards keys straight to the view.
type editor interface {
	Editing() bool
}
