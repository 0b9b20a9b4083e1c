package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultViewWidth  = 76
	defaultViewHeight = 14

	// chrome is the height taken by the page title, tabs and hot keys.
	chrome = 14
)

// textView is a scrollable block of wrapped text.
type textView struct {
	port viewport.Model
	text string
}

func newTextView() textView {
	return textView{port: viewport.New(defaultViewWidth, defaultViewHeight)}
}

func (v *textView) setText(text string) {
	v.text = text
	v.port.SetContent(lipgloss.NewStyle().Width(v.port.Width).Render(text))
	v.port.GotoTop()
}

func (v *textView) setTextAtBottom(text string) {
	v.setText(text)
	v.port.GotoBottom()
}

func (v *textView) resize(msg tea.WindowSizeMsg) {
	v.port.Width = max(msg.Width-8, 20)
	v.port.Height = max(msg.Height-chrome, 5)
	v.port.SetContent(lipgloss.NewStyle().Width(v.port.Width).Render(v.text))
}

func (v *textView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.port, cmd = v.port.Update(msg)
	return cmd
}

func (v *textView) View() string {
	return v.port.View()
}
