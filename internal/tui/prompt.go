package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel asks for a single line, e.g. a file path.
type promptModel struct {
	label string
	input textinput.Model
}

func newPrompt(label, placeholder string) *promptModel {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = inputWidth
	in.Focus()
	return &promptModel{label: label, input: in}
}

func (p *promptModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *promptModel) value() string {
	return p.input.Value()
}

func (p *promptModel) View() string {
	return p.label + "\n\n[" + p.input.View() + "]"
}
