package ui

import (
	"fmt"
	"strconv"
	"strings"

	"atrisure/internal/assistant"
	"atrisure/internal/catalog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// visibleMessages is how much history the concierge panel shows.
const visibleMessages = 8

// AssistantView is the concierge panel: chat history, canned intents, an
// input line and module recommendations.
type AssistantView struct {
	Conversation    *assistant.Conversation
	Recommendations []catalog.Recommendation
	Focused         bool

	input   textinput.Model
	editing bool
	width   int
}

var (
	_ View   = (*AssistantView)(nil)
	_ editor = (*AssistantView)(nil)
)

// NewAssistantView creates the panel over conv.
func NewAssistantView(conv *assistant.Conversation) *AssistantView {
	ti := textinput.New()
	ti.Placeholder = "Ask about modules, data, workflows, or compliance…"
	ti.Prompt = "› "
	ti.Width = 30
	return &AssistantView{Conversation: conv, input: ti}
}

// Init implements View.
func (v *AssistantView) Init() tea.Cmd {
	return nil
}

// Editing implements editor.
func (v *AssistantView) Editing() bool {
	return v.editing
}

// Input returns the pending question.
func (v *AssistantView) Input() string {
	return v.input.Value()
}

// SetWidth sets the rendered width.
func (v *AssistantView) SetWidth(w int) {
	v.width = w
	v.input.Width = max(8, w-6)
}

// Update implements View.
func (v *AssistantView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	if v.editing {
		switch km.String() {
		case "esc":
			v.editing = false
			v.input.Blur()
			return v, nil
		case "enter":
			q := strings.TrimSpace(v.input.Value())
			if q == "" {
				return v, nil
			}
			v.input.Reset()
			return v, func() tea.Msg { return AskMsg{Query: q} }
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(km)
		return v, cmd
	}

	switch s := km.String(); s {
	case "i", "enter":
		v.editing = true
		return v, v.input.Focus()
	case "1", "2", "3", "4":
		// Intents fill the input; the user still submits.
		n, _ := strconv.Atoi(s)
		intents := assistant.CannedIntents()
		if n <= len(intents) {
			v.input.SetValue(intents[n-1])
			v.editing = true
			return v, v.input.Focus()
		}
	}
	return v, nil
}

// View implements View.
func (v *AssistantView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("AtriSure Concierge") + "  " + Styles.Muted.Render("AI Copilot") + "\n\n")

	msgs := v.Conversation.Messages()
	if len(msgs) > visibleMessages {
		msgs = msgs[len(msgs)-visibleMessages:]
	}
	bubble := lipgloss.NewStyle()
	if v.width > 4 {
		bubble = bubble.Width(v.width - 4)
	}
	for _, m := range msgs {
		who := Styles.Bot.Render("Concierge")
		if m.Role == assistant.RoleUser {
			who = Styles.User.Render("You")
		}
		b.WriteString(who + "\n" + bubble.Render(m.Content) + "\n\n")
	}

	for i, intent := range assistant.CannedIntents() {
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("%d %s", i+1, intent)) + "\n")
	}
	b.WriteString(v.input.View() + "\n\n")

	b.WriteString(Styles.Section.Render("SUGGESTED MODULES") + "\n")
	if len(v.Recommendations) == 0 {
		b.WriteString(Styles.Empty.Render("No modules match the current search.") + "\n")
	}
	for i, r := range v.Recommendations {
		b.WriteString(fmt.Sprintf("%s %s\n", Styles.Hint.Render(fmt.Sprintf("SPC g %d", i+1)), Styles.Normal.Render(r.Title)))
		b.WriteString("  " + Styles.Muted.Render(r.Description) + "\n")
	}

	b.WriteString("\n" + Styles.Section.Render("KNOWLEDGE PULSE") + "\n")
	b.WriteString(Styles.Muted.Render("Receive weekly AI-generated playbooks based on customer interactions and claim trends.") + "\n")
	b.WriteString(Styles.Hint.Render("SPC g k knowledge companion  SPC g a visualize insights"))
	return b.String()
}
