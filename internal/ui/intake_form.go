package ui

import (
	"strings"

	"atrisure/internal/prospect"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldEmail
	fieldPremium
	fieldStatus
	fieldCount
)

var intakeLabels = [fieldCount]string{"Organization Name", "Primary Email", "Estimated Premium", "Status"}

// intakeForm is the smart intake console: three text inputs and a status
// selector cycled with left/right.
type intakeForm struct {
	inputs [fieldStatus]textinput.Model
	status prospect.Status
	field  int
}

func newIntakeForm() intakeForm {
	var f intakeForm
	placeholders := [fieldStatus]string{"e.g. Horizon Manufacturing", "contact@example.com", "75000"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.Width = 32
		f.inputs[i] = ti
	}
	return f
}

// focus moves the cursor to field i, blurring the others.
func (f *intakeForm) focus(i int) tea.Cmd {
	f.field = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.field {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *intakeForm) blur() {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
}

// update routes a key to the focused field.
func (f *intakeForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.focus(f.field + 1)
	case "shift+tab", "up":
		return f.focus(f.field - 1)
	}
	if f.field == fieldStatus {
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			f.status = f.status.Next()
		}
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.field], cmd = f.inputs[f.field].Update(msg)
	return cmd
}

func (f *intakeForm) name() string {
	return f.inputs[fieldName].Value()
}

// draft builds the pending record. Premium keeps only digits and dots.
func (f *intakeForm) draft() prospect.Draft {
	return prospect.Draft{
		Name:    strings.TrimSpace(f.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(f.inputs[fieldEmail].Value()),
		Premium: prospect.ParsePremium(f.inputs[fieldPremium].Value()),
		Status:  f.status,
	}
}

// reset clears every field back to a fresh form on the name input.
func (f *intakeForm) reset() tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Reset()
	}
	f.status = prospect.StatusNew
	return f.focus(fieldName)
}

func (f *intakeForm) view() string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := Styles.Section.Render(intakeLabels[i])
		if i == f.field {
			label = Styles.Selected.Render("› " + intakeLabels[i])
		}
		b.WriteString(label + "\n")
		if i == fieldStatus {
			b.WriteString("  ◂ " + f.status.String() + " ▸\n")
			continue
		}
		b.WriteString("  " + f.inputs[i].View() + "\n")
	}
	return b.String()
}
