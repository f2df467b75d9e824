package ui

import (
	"atrisure/internal/catalog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// moduleItem adapts a catalog module to bubbles/list.
type moduleItem struct {
	module catalog.Module
}

func (i moduleItem) FilterValue() string { return i.module.Name + " " + i.module.Category }
func (i moduleItem) Title() string       { return i.module.Name }
func (i moduleItem) Description() string { return i.module.Tagline }

// ModuleSwitcherModal is a fuzzy-filtered jump list over every module,
// independent of the sidebar search (SPC s).
type ModuleSwitcherModal struct {
	list list.Model
}

var (
	_ View   = (*ModuleSwitcherModal)(nil)
	_ editor = (*ModuleSwitcherModal)(nil)
)

// NewModuleSwitcherModal lists modules with the cursor on active.
func NewModuleSwitcherModal(modules []catalog.Module, active string) *ModuleSwitcherModal {
	items := make([]list.Item, len(modules))
	cursor := 0
	for i, m := range modules {
		items[i] = moduleItem{module: m}
		if m.ID == active {
			cursor = i
		}
	}
	delegate := NewCompactListDelegate()
	delegate.ShowDescription = true
	l := list.New(items, delegate, 56, 20)
	l.Title = "Switch module"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Select(cursor)
	return &ModuleSwitcherModal{list: l}
}

// Editing implements editor; esc cancels an active filter before it closes
// the modal.
func (m *ModuleSwitcherModal) Editing() bool {
	return m.list.FilterState() == list.Filtering
}

// SelectedID returns the highlighted module id.
func (m *ModuleSwitcherModal) SelectedID() string {
	if it, ok := m.list.SelectedItem().(moduleItem); ok {
		return it.module.ID
	}
	return ""
}

// Init implements View.
func (m *ModuleSwitcherModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ModuleSwitcherModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" && !m.Editing() {
		if id := m.SelectedID(); id != "" {
			return m, func() tea.Msg { return SelectModuleMsg{ID: id} }
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ModuleSwitcherModal) View() string {
	return Styles.Box.Render(m.list.View() + "\n" + Styles.Hint.Render("/ filter  Enter: open  Esc: cancel"))
}
