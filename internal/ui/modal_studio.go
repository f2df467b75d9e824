package ui

import (
	"fmt"
	"strings"

	"atrisure/internal/studio"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type studioPane int

const (
	panePalette studioPane = iota
	paneCanvas
	paneInspector
	paneCount
)

// StudioModal is the no-code layout builder: template palette, canvas and
// block inspector side by side, with a live preview underneath.
type StudioModal struct {
	Canvas *studio.Canvas

	pane          studioPane
	paletteCursor int
	canvasCursor  int
	inspectorRow  int // 0 = title, n = field n-1
	editing       bool
	input         textinput.Model
	width         int
}

var (
	_ View   = (*StudioModal)(nil)
	_ editor = (*StudioModal)(nil)
)

// NewStudioModal opens the studio over an existing canvas so blocks survive
// closing and reopening.
func NewStudioModal(c *studio.Canvas) *StudioModal {
	ti := textinput.New()
	ti.Prompt = "✎ "
	ti.Width = 24
	m := &StudioModal{Canvas: c, input: ti}
	if c.SelectedUID() != "" {
		m.pane = paneInspector
		m.syncCanvasCursor()
	}
	return m
}

// Init implements View.
func (m *StudioModal) Init() tea.Cmd {
	return nil
}

// Editing implements editor.
func (m *StudioModal) Editing() bool {
	return m.editing
}

// SetWidth sets the rendered width.
func (m *StudioModal) SetWidth(w int) {
	m.width = w
}

// Update implements View.
func (m *StudioModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.editing {
		return m, m.updateEditing(km)
	}
	switch km.String() {
	case "tab", "l", "right":
		m.pane = (m.pane + 1) % paneCount
		return m, nil
	case "shift+tab", "h", "left":
		m.pane = (m.pane + paneCount - 1) % paneCount
		return m, nil
	}
	switch m.pane {
	case panePalette:
		return m, m.updatePalette(km)
	case paneCanvas:
		return m, m.updateCanvas(km)
	default:
		return m, m.updateInspector(km)
	}
}

func (m *StudioModal) updatePalette(km tea.KeyMsg) tea.Cmd {
	templates := m.Canvas.Templates().All()
	if len(templates) == 0 {
		return nil
	}
	switch km.String() {
	case "j", "down":
		m.paletteCursor = min(m.paletteCursor+1, len(templates)-1)
	case "k", "up":
		m.paletteCursor = max(m.paletteCursor-1, 0)
	case "enter", "a":
		if _, ok := m.Canvas.AddBlock(templates[m.paletteCursor].ID); ok {
			m.syncCanvasCursor()
			m.inspectorRow = 0
		}
	}
	return nil
}

func (m *StudioModal) updateCanvas(km tea.KeyMsg) tea.Cmd {
	blocks := m.Canvas.Blocks()
	if len(blocks) == 0 {
		return nil
	}
	switch km.String() {
	case "j", "down":
		m.canvasCursor = min(m.canvasCursor+1, len(blocks)-1)
	case "k", "up":
		m.canvasCursor = max(m.canvasCursor-1, 0)
	case "enter":
		m.Canvas.SelectBlock(blocks[m.canvasCursor].UID)
		m.inspectorRow = 0
		m.pane = paneInspector
	case "d", "x":
		m.Canvas.RemoveBlock(blocks[m.canvasCursor].UID)
		m.canvasCursor = max(0, min(m.canvasCursor, m.Canvas.Len()-1))
	case "c":
		m.Canvas.ClearSelection()
	}
	return nil
}

func (m *StudioModal) updateInspector(km tea.KeyMsg) tea.Cmd {
	sel, ok := m.Canvas.Selected()
	if !ok {
		return nil
	}
	rows := 1 + len(sel.Fields)
	switch km.String() {
	case "j", "down":
		m.inspectorRow = min(m.inspectorRow+1, rows-1)
	case "k", "up":
		m.inspectorRow = max(m.inspectorRow-1, 0)
	case "enter", "e":
		value := sel.Title
		if m.inspectorRow > 0 {
			value = sel.Fields[m.inspectorRow-1]
		}
		m.input.SetValue(value)
		m.input.CursorEnd()
		m.editing = true
		return m.input.Focus()
	}
	return nil
}

func (m *StudioModal) updateEditing(km tea.KeyMsg) tea.Cmd {
	switch km.String() {
	case "esc":
		m.stopEditing()
		return nil
	case "enter":
		uid := m.Canvas.SelectedUID()
		value := m.input.Value()
		if m.inspectorRow == 0 {
			m.Canvas.UpdateBlockTitle(uid, value)
		} else {
			m.Canvas.UpdateBlockField(uid, m.inspectorRow-1, value)
		}
		m.stopEditing()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(km)
	return cmd
}

func (m *StudioModal) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

// syncCanvasCursor moves the canvas cursor onto the selected block.
func (m *StudioModal) syncCanvasCursor() {
	uid := m.Canvas.SelectedUID()
	for i, b := range m.Canvas.Blocks() {
		if b.UID == uid {
			m.canvasCursor = i
			return
		}
	}
}

// View implements View.
func (m *StudioModal) View() string {
	colWidth := 30
	if m.width > 0 {
		colWidth = max(22, (m.width-16)/3)
	}
	col := func(p studioPane, body string) string {
		style := Styles.Panel
		if m.pane == p {
			style = Styles.PanelFocused
		}
		return style.Width(colWidth).Render(body)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		col(panePalette, m.paletteView()),
		col(paneCanvas, m.canvasView()),
		col(paneInspector, m.inspectorView()),
	)
	content := Styles.Title.Render("No-Code Studio") + "  " +
		Styles.Muted.Render("Compose a workspace from reusable blocks") + "\n\n" +
		top + "\n\n" + m.previewView() + "\n\n" +
		Styles.Hint.Render("tab switch pane  enter add/select/edit  d remove  esc close")
	return Styles.Box.Render(content)
}

func (m *StudioModal) paletteView() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("BLOCK PALETTE") + "\n")
	for i, t := range m.Canvas.Templates().All() {
		name := t.Name
		if m.pane == panePalette && i == m.paletteCursor {
			name = Styles.Selected.Render("> " + name)
		} else {
			name = "  " + name
		}
		b.WriteString(name + " " + Styles.Muted.Render("("+t.Kind.String()+")") + "\n")
		b.WriteString("  " + Styles.Hint.Render(t.Description) + "\n")
	}
	return b.String()
}

func (m *StudioModal) canvasView() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("CANVAS") + "\n")
	blocks := m.Canvas.Blocks()
	if len(blocks) == 0 {
		b.WriteString(Styles.Empty.Render("Add blocks from the palette."))
		return b.String()
	}
	selected := m.Canvas.SelectedUID()
	for i, blk := range blocks {
		prefix := "  "
		if m.pane == paneCanvas && i == m.canvasCursor {
			prefix = "> "
		}
		line := blk.Title
		if blk.UID == selected {
			line = Styles.Selected.Render(line + " ◆")
		}
		b.WriteString(prefix + line + "\n")
		b.WriteString("  " + Styles.Hint.Render(strings.Join(blk.Fields, " · ")) + "\n")
	}
	return b.String()
}

func (m *StudioModal) inspectorView() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render("INSPECTOR") + "\n")
	sel, ok := m.Canvas.Selected()
	if !ok {
		b.WriteString(Styles.Empty.Render("Select a block to edit its properties."))
		return b.String()
	}
	labels := append([]string{"Title"}, fieldLabels(len(sel.Fields))...)
	values := append([]string{sel.Title}, sel.Fields...)
	for i := range labels {
		marker := "  "
		if m.pane == paneInspector && i == m.inspectorRow {
			marker = "> "
		}
		value := values[i]
		if m.editing && i == m.inspectorRow {
			value = m.input.View()
		}
		b.WriteString(marker + Styles.Muted.Render(labels[i]) + "\n  " + value + "\n")
	}
	return b.String()
}

func fieldLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Field %d", i+1)
	}
	return out
}

func (m *StudioModal) previewView() string {
	preview := m.Canvas.Preview()
	if len(preview) == 0 {
		return Styles.Empty.Render("Preview appears here once blocks are placed.")
	}
	tiles := make([]string, 0, len(preview))
	for _, p := range preview {
		tiles = append(tiles, Styles.Card.Render(renderPreviewBlock(p)))
	}
	return Styles.Section.Render("PREVIEW") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// renderPreviewBlock draws a block the way its kind would appear in a
// workspace.
func renderPreviewBlock(p studio.PreviewBlock) string {
	title := Styles.Title.Render(p.Title)
	switch p.Kind {
	case studio.KindMetric:
		return title + "\n" + Styles.Metric.Render(strings.Join(p.Fields, " | "))
	case studio.KindTable:
		return title + "\n" + strings.Join(p.Fields, " │ ") + "\n" + strings.Repeat("─", 12)
	case studio.KindForm:
		var b strings.Builder
		b.WriteString(title)
		for _, f := range p.Fields {
			b.WriteString("\n" + f + ": [          ]")
		}
		return b.String()
	case studio.KindChart:
		return title + "\n" + Styles.Success.Render("▁▃▅▇▆▇") + "\n" + Styles.Muted.Render(strings.Join(p.Fields, " / "))
	default:
		return title
	}
}
