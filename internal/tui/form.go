package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 40

// form is a column of labelled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	errs   map[int]string
	focus  int
}

func newForm(labels ...string) form {
	f := form{labels: labels, inputs: make([]textinput.Model, len(labels))}
	for i := range f.inputs {
		f.inputs[i] = textinput.New()
		f.inputs[i].Width = inputWidth
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) masked(i int) {
	f.inputs[i].EchoMode = textinput.EchoPassword
	f.inputs[i].EchoCharacter = '*'
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) set(i int, v string) {
	f.inputs[i].SetValue(v)
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.errs = nil
	f.focus = 0
	f.inputs[0].Focus()
}

// update moves the focus on tab and shift+tab and types into the focused
// field otherwise.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.focusNext()
			return nil
		case "shift+tab", "up":
			f.focusPrev()
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view() string {
	labelWidth := lipgloss.Width("Поле")
	for _, l := range f.labels {
		if w := lipgloss.Width(l); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Значение\n", labelWidth, "Поле"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", inputWidth+4))
	b.WriteString("\n")

	for i, l := range f.labels {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, l))
		b.WriteString(f.inputs[i].View())
		b.WriteString("]")
		if e, ok := f.errs[i]; ok {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render(e))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
