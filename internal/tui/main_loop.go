package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
)

// screen is one tab of the main loop. Screens keep their state behind a
// pointer, so Update returns only the command.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View() string
	HotKeys() string

	// Capturing reports that the screen consumes every key, e.g. while
	// a form or a confirmation is open.
	Capturing() bool
}

type tabEntry struct {
	title  string
	screen screen
	loaded bool
}

type mainLoopModel struct {
	ctx  context.Context
	user models.User

	tabs   []tabEntry
	active int
	status string

	overlay *errorOverlayModel
	expired bool

	logout bool
}

func newMainLoopModel(ctx context.Context, api adapter.ServerAdapter, user models.User, copyText func(string) error) mainLoopModel {
	tabs := []tabEntry{
		{title: "Дневник", screen: newRecordsScreen(ctx, api)},
		{title: "Анализы", screen: newLabsScreen(ctx, api)},
		{title: "Аналитика", screen: newAnalyticsScreen(ctx, api, copyText)},
		{title: "Чат-ассистент", screen: newChatScreen(ctx, api)},
		{title: "Архив", screen: newArchiveScreen(ctx, api, copyText)},
	}
	if user.IsAdmin() {
		tabs = append(tabs, tabEntry{title: "Пользователи", screen: newUsersScreen(ctx, api, user)})
	}
	tabs[0].loaded = true

	return mainLoopModel{
		ctx:  ctx,
		user: user,
		tabs: tabs,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.tabs[m.active].screen.Init()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case failedMsg:
		m.overlay = &errorOverlayModel{message: msg.text}
		if errors.Is(msg.err, adapter.ErrUnauthorized) {
			m.expired = true
		}
		return m, nil
	case noticeMsg:
		m.status = string(msg)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmds []tea.Cmd
	for _, t := range m.tabs {
		if t.loaded {
			cmds = append(cmds, t.screen.Update(msg))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m mainLoopModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
			if m.expired {
				m.logout = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	active := m.tabs[m.active].screen
	if !active.Capturing() {
		switch {
		case key.Matches(msg, keys.tab):
			return m.switchTab(m.active + 1)
		case key.Matches(msg, keys.backtab):
			return m.switchTab(m.active - 1)
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}

		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.tabs) {
			return m.switchTab(n - 1)
		}
	}

	m.status = ""
	return m, active.Update(msg)
}

func (m mainLoopModel) switchTab(i int) (tea.Model, tea.Cmd) {
	m.active = (i + len(m.tabs)) % len(m.tabs)
	m.status = ""

	if m.tabs[m.active].loaded {
		return m, nil
	}
	m.tabs[m.active].loaded = true
	return m, m.tabs[m.active].screen.Init()
}

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	titles := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		label := strconv.Itoa(i+1) + " " + t.title
		if i == m.active {
			titles[i] = activeTabStyle.Render(label)
		} else {
			titles[i] = tabStyle.Render(label)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(titles, " │ "))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	b.WriteString(m.tabs[m.active].screen.View())

	active := m.tabs[m.active].screen
	hotKeys := active.HotKeys()
	if !active.Capturing() {
		hotKeys += " │ tab: вкладка │ l: выйти из аккаунта │ q: закрыть"
	}

	title := "DIACOMPANION · " + m.user.Email
	if m.user.IsAdmin() {
		title += " (" + roleLabel(m.user.Role) + ")"
	}
	return renderPage(title, b.String(), strings.TrimPrefix(hotKeys, " │ "))
}
