package ui

import (
	"fmt"
	"strings"

	"atrisure/internal/catalog"
	"atrisure/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SidebarView lists catalog modules under a natural-language search box.
type SidebarView struct {
	Catalog *catalog.Catalog
	Active  string // module the user last picked
	Focused bool

	search   textinput.Model
	editing  bool
	filtered []catalog.Module
	cursor   int
	width    int
}

var (
	_ View   = (*SidebarView)(nil)
	_ editor = (*SidebarView)(nil)
)

// NewSidebarView lists every module with active highlighted.
func NewSidebarView(c *catalog.Catalog, active string) *SidebarView {
	ti := textinput.New()
	ti.Placeholder = "Search modules…"
	ti.Prompt = "/ "
	ti.Width = 24
	s := &SidebarView{Catalog: c, Active: active, search: ti}
	s.SetWidth(sidebarWidth)
	s.refilter()
	return s
}

// Init implements View.
func (s *SidebarView) Init() tea.Cmd {
	return nil
}

// Editing implements editor.
func (s *SidebarView) Editing() bool {
	return s.editing
}

// Term returns the current search term.
func (s *SidebarView) Term() string {
	return s.search.Value()
}

// SetTerm replaces the search term and refilters.
func (s *SidebarView) SetTerm(term string) {
	s.search.SetValue(term)
	s.refilter()
}

// Filtered returns the modules matching the current term.
func (s *SidebarView) Filtered() []catalog.Module {
	return s.filtered
}

// ActiveModule resolves the module the workspace should render: the picked
// module while it is visible, otherwise the first visible one.
func (s *SidebarView) ActiveModule() catalog.Module {
	return s.Catalog.Resolve(catalog.EffectiveActive(s.filtered, s.Active))
}

// SetWidth sets the rendered width.
func (s *SidebarView) SetWidth(w int) {
	s.width = w
	s.search.Width = max(8, w-6)
}

func (s *SidebarView) refilter() {
	s.filtered = s.Catalog.Filter(s.search.Value())
	if s.cursor >= len(s.filtered) {
		s.cursor = max(0, len(s.filtered)-1)
	}
}

// Update implements View.
func (s *SidebarView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.editing {
		switch km.String() {
		case "esc":
			s.stopEditing()
			return s, nil
		case "enter":
			s.stopEditing()
			return s, s.selectCursor()
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(km)
		s.cursor = 0
		s.refilter()
		return s, cmd
	}

	switch km.String() {
	case "/":
		s.editing = true
		return s, s.search.Focus()
	case "j", "down":
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "g":
		s.cursor = 0
	case "G":
		s.cursor = max(0, len(s.filtered)-1)
	case "enter":
		return s, s.selectCursor()
	case "x":
		s.SetTerm("")
	}
	return s, nil
}

func (s *SidebarView) stopEditing() {
	s.editing = false
	s.search.Blur()
}

func (s *SidebarView) selectCursor() tea.Cmd {
	if s.cursor >= len(s.filtered) {
		return nil
	}
	id := s.filtered[s.cursor].ID
	return func() tea.Msg { return SelectModuleMsg{ID: id} }
}

// View implements View.
func (s *SidebarView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Modules") + "\n")
	b.WriteString(s.search.View() + "\n\n")

	if len(s.filtered) == 0 {
		b.WriteString(Styles.Empty.Render(fmt.Sprintf("No modules match %q", s.Term())))
		return b.String()
	}
	active := s.ActiveModule().ID
	for i, m := range s.filtered {
		marker := "  "
		if s.Focused && i == s.cursor {
			marker = "> "
		}
		line := textutil.Truncate(fmt.Sprintf("[%s] %s", m.Icon, m.Name), max(8, s.width-6))
		switch {
		case m.ID == active:
			line = Styles.Selected.Render("● " + line)
		default:
			line = Styles.Normal.Render("  " + line)
		}
		b.WriteString(marker + line + "\n")
		b.WriteString("     " + Styles.Muted.Render(m.Category) + "\n")
	}
	hint := "/ search  j/k move  enter open"
	if s.Term() != "" {
		hint += "  x clear"
	}
	b.WriteString("\n" + Styles.Hint.Render(hint))
	return b.String()
}
