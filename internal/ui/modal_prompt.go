package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathPromptModal asks for a local file path. The terminal has no file
// picker, so imports and OCR start here.
type PathPromptModal struct {
	Title    string
	Help     string
	input    textinput.Model
	onSubmit func(path string) tea.Msg
}

var _ View = (*PathPromptModal)(nil)

// NewPathPromptModal creates a prompt that sends onSubmit(path) on enter.
func NewPathPromptModal(title, help string, onSubmit func(string) tea.Msg) *PathPromptModal {
	ti := textinput.New()
	ti.Placeholder = "~/Downloads/prospects.csv"
	ti.Width = 48
	ti.Focus()
	return &PathPromptModal{Title: title, Help: help, input: ti, onSubmit: onSubmit}
}

// NewImportPromptModal prompts for a CSV file to import.
func NewImportPromptModal() *PathPromptModal {
	return NewPathPromptModal(
		"Import prospects",
		"CSV with columns name, email, premium, status.",
		func(p string) tea.Msg { return ImportPathMsg{Path: p} },
	)
}

// NewOCRPromptModal prompts for a text document to summarize.
func NewOCRPromptModal() *PathPromptModal {
	m := NewPathPromptModal(
		"Document intelligence",
		"Upload a text-based policy schedule to surface key clauses.",
		func(p string) tea.Msg { return OCRPathMsg{Path: p} },
	)
	m.input.Placeholder = "~/Documents/schedule.txt"
	return m
}

// Value returns the typed path.
func (m *PathPromptModal) Value() string {
	return m.input.Value()
}

// Init implements View.
func (m *PathPromptModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *PathPromptModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		path := strings.TrimSpace(m.input.Value())
		if path == "" || m.onSubmit == nil {
			return m, nil
		}
		return m, func() tea.Msg { return m.onSubmit(path) }
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *PathPromptModal) View() string {
	content := Styles.Title.Render(m.Title) + "\n"
	content += Styles.Muted.Render(m.Help) + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: open  Esc: cancel")
	return Styles.Box.Render(content)
}
