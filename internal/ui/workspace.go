package ui

import (
	"fmt"
	"strings"

	"atrisure/internal/catalog"
	"atrisure/internal/docintel"
	"atrisure/internal/prospect"
	"atrisure/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// WorkspaceView renders the active module: feature cards, the intake
// console, the prospect grid and the import/export and OCR cards.
type WorkspaceView struct {
	Prospects  *prospect.Registry
	Module     catalog.Module
	OCRSummary string
	LastExport string
	Focused    bool

	form     intakeForm
	formOpen bool
	cursor   int
	width    int
}

var (
	_ View   = (*WorkspaceView)(nil)
	_ editor = (*WorkspaceView)(nil)
)

// NewWorkspaceView creates a workspace over reg showing module.
func NewWorkspaceView(reg *prospect.Registry, module catalog.Module) *WorkspaceView {
	return &WorkspaceView{
		Prospects:  reg,
		Module:     module,
		OCRSummary: docintel.Placeholder,
		form:       newIntakeForm(),
	}
}

// Init implements View.
func (w *WorkspaceView) Init() tea.Cmd {
	return nil
}

// Editing implements editor.
func (w *WorkspaceView) Editing() bool {
	return w.formOpen
}

// SetWidth sets the rendered width.
func (w *WorkspaceView) SetWidth(width int) {
	w.width = width
}

// OpenForm shows the intake console with the cursor on the name field.
func (w *WorkspaceView) OpenForm() tea.Cmd {
	w.formOpen = true
	return w.form.focus(fieldName)
}

// CloseForm hides the intake console, keeping what was typed.
func (w *WorkspaceView) CloseForm() {
	w.formOpen = false
	w.form.blur()
}

// ResetForm clears the intake console after a successful create.
func (w *WorkspaceView) ResetForm() tea.Cmd {
	return w.form.reset()
}

// SyncCursor points the grid cursor at the registry's selection.
func (w *WorkspaceView) SyncCursor() {
	sel, ok := w.Prospects.Selected()
	if !ok {
		w.clampCursor()
		return
	}
	for i, p := range w.Prospects.All() {
		if p.ID == sel.ID {
			w.cursor = i
			return
		}
	}
}

func (w *WorkspaceView) clampCursor() {
	w.cursor = max(0, min(w.cursor, w.Prospects.Len()-1))
}

// CursorProspect returns the grid row under the cursor.
func (w *WorkspaceView) CursorProspect() (prospect.Prospect, bool) {
	all := w.Prospects.All()
	if w.cursor < 0 || w.cursor >= len(all) {
		return prospect.Prospect{}, false
	}
	return all[w.cursor], true
}

// Update implements View.
func (w *WorkspaceView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}
	if w.formOpen {
		switch km.String() {
		case "esc":
			w.CloseForm()
			return w, nil
		case "enter":
			d := w.form.draft()
			if d.Name == "" {
				return w, nil
			}
			return w, func() tea.Msg { return CreateProspectMsg{Draft: d} }
		}
		return w, w.form.update(km)
	}

	switch km.String() {
	case "n":
		return w, w.OpenForm()
	case "j", "down":
		w.moveCursor(1)
	case "k", "up":
		w.moveCursor(-1)
	case "enter":
		if p, ok := w.CursorProspect(); ok {
			w.Prospects.Select(p.ID)
		}
	case "d":
		if _, ok := w.CursorProspect(); ok {
			return w, func() tea.Msg { return ShowDeleteProspectMsg{} }
		}
	case "m":
		return w, func() tea.Msg { return MergeDuplicatesMsg{} }
	}
	return w, nil
}

func (w *WorkspaceView) moveCursor(delta int) {
	if w.Prospects.Len() == 0 {
		return
	}
	w.cursor += delta
	w.clampCursor()
	if p, ok := w.CursorProspect(); ok {
		w.Prospects.Select(p.ID)
	}
}

// View implements View.
func (w *WorkspaceView) View() string {
	sections := []string{
		w.moduleHeader(),
		w.featureCards(),
		w.intakeSection(),
		w.gridSection(),
		w.bulkSection(),
		w.documentSection(),
	}
	if insight := w.insightSection(); insight != "" {
		sections = append(sections, insight)
	}
	return strings.Join(sections, "\n\n")
}

func (w *WorkspaceView) moduleHeader() string {
	m := w.Module
	left := Styles.Muted.Render(strings.ToUpper(m.Category)) + "\n" +
		Styles.Title.Render(m.Name) + "\n" +
		Styles.Muted.Render(m.Tagline)
	right := Styles.Card.Render(
		Styles.Muted.Render("TOTAL PREMIUM") + "\n" + Styles.Metric.Render(formatPremium(w.Prospects.TotalPremium())),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right) + "\n" +
		Styles.Hint.Render("SPC n customize layout")
}

func (w *WorkspaceView) featureCards() string {
	cardWidth := 36
	if w.width > 0 {
		cardWidth = max(24, w.width/2-2)
	}
	var cards []string
	for _, f := range w.Module.Features {
		var b strings.Builder
		b.WriteString(Styles.Section.Render(f.Title) + "\n")
		b.WriteString(Styles.Muted.Render(f.Description))
		if len(f.Metrics) > 0 {
			parts := make([]string, 0, len(f.Metrics))
			for _, m := range f.Metrics {
				parts = append(parts, fmt.Sprintf("%s %s %s", Styles.Metric.Render(m.Value), m.Label, trendGlyph(string(m.Trend))))
			}
			b.WriteString("\n" + strings.Join(parts, "  "))
		}
		if len(f.Actions) > 0 {
			parts := make([]string, 0, len(f.Actions))
			for _, a := range f.Actions {
				parts = append(parts, "["+a+"]")
			}
			b.WriteString("\n" + Styles.Hint.Render(strings.Join(parts, " ")))
		}
		cards = append(cards, Styles.Card.Width(cardWidth).Render(b.String()))
	}
	// Two cards per row.
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		end := min(i+2, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (w *WorkspaceView) intakeSection() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Smart Intake Console") + "  " + Styles.Muted.Render("AI suggestions active") + "\n")
	if !w.formOpen {
		b.WriteString(Styles.Hint.Render("n new prospect"))
	} else {
		b.WriteString(w.form.view())
		b.WriteString(Styles.Hint.Render("tab next field  ◂/▸ status  enter create  esc close"))
	}
	if w.formOpen {
		if s, ok := w.Prospects.Suggest(w.form.name()); ok {
			b.WriteString("\n" + Styles.Alert.Render(s.Message))
		}
	}
	if ids := w.Prospects.DuplicateAlerts(); len(ids) > 0 {
		b.WriteString("\n" + Styles.Alert.Render(fmt.Sprintf("Potential duplicates detected: %s.", strings.Join(ids, ", "))))
		b.WriteString(" " + Styles.Hint.Render("SPC m merge duplicates"))
	}
	return b.String()
}

func (w *WorkspaceView) gridSection() string {
	all := w.Prospects.All()
	if len(all) == 0 {
		return Styles.Title.Render("Prospects") + "\n" + Styles.Empty.Render("No prospects yet.")
	}
	sel, _ := w.Prospects.Selected()
	rows := make([][]string, 0, len(all))
	for _, p := range all {
		rows = append(rows, []string{p.ID, textutil.Truncate(p.Name, 28), textutil.Truncate(p.Email, 30), formatPremium(p.Premium), p.Status.String()})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(Styles.Muted).
		Headers("ID", "NAME", "EMAIL", "PREMIUM", "STATUS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(Styles.Section)
			case row >= 0 && row < len(all) && all[row].ID == sel.ID:
				return base.Inherit(Styles.Selected)
			case w.Focused && row == w.cursor:
				return base.Underline(true)
			}
			return base.Inherit(Styles.Normal)
		})
	hint := "j/k select  d delete  n new"
	return Styles.Title.Render("Prospects") + "\n" + t.String() + "\n" + Styles.Hint.Render(hint)
}

func (w *WorkspaceView) bulkSection() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("BULK IMPORT & EXPORT") + "\n")
	b.WriteString(Styles.Muted.Render("CSV files with columns name, email, premium, status.") + "\n")
	b.WriteString(Styles.Hint.Render("SPC i import CSV  SPC e export current dataset") + "\n")
	if w.LastExport != "" {
		b.WriteString(Styles.Muted.Render("Last export: "+w.LastExport) + "\n")
	}
	b.WriteString(Styles.Success.Render(fmt.Sprintf("%d duplicates resolved this session.", w.Prospects.DuplicatesResolved())))
	return b.String()
}

func (w *WorkspaceView) documentSection() string {
	return Styles.Section.Render("DOCUMENT INTELLIGENCE") + "\n" +
		Styles.Hint.Render("SPC o summarize a text document") + "\n" +
		Styles.Card.Render(Styles.Muted.Render(w.OCRSummary))
}

func (w *WorkspaceView) insightSection() string {
	p, ok := w.Prospects.Selected()
	if !ok {
		return ""
	}
	return Styles.Section.Render("SMART SUMMARY") + "\n" + Styles.Muted.Render(insightText(p))
}

func insightText(p prospect.Prospect) string {
	return fmt.Sprintf("%s is currently marked as %s. AI recommends a follow-up within 3 days with focus on risk appetite around property and casualty lines.", p.Name, p.Status)
}

// formatPremium renders a premium as dollars with thousands separators.
func formatPremium(v float64) string {
	return "$" + humanize.Commaf(v)
}
