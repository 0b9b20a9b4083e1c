// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
)

type greetingMsg struct {
	greeting models.ChatMessage
	err      error
}

type chatReplyMsg struct {
	reply models.ChatMessage
	err   error
}

type chatSavedMsg struct {
	archived models.ArchivedChat
	err      error
}

// chatScreen is a conversation with the assistant. The whole transcript is
// sent with every message.
type chatScreen struct {
	ctx context.Context
	api adapter.ServerAdapter

	messages []models.ChatMessage
	input    textinput.Model
	text     textView
	waiting  bool
}

func newChatScreen(ctx context.Context, api adapter.ServerAdapter) *chatScreen {
	in := textinput.New()
	in.Placeholder = "Сообщение"
	in.Width = inputWidth + 20
	in.CharLimit = 2000

	return &chatScreen{ctx: ctx, api: api, input: in, text: newTextView()}
}

func (s *chatScreen) Init() tea.Cmd {
	s.waiting = true
	return s.cmdGreeting()
}

func (s *chatScreen) Capturing() bool {
	return s.input.Focused()
}

func (s *chatScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case greetingMsg:
		s.waiting = false
		if msg.err != nil {
			return failedWith(msgChatFailed, msg.err)
		}
		s.messages = []models.ChatMessage{msg.greeting}
		s.refresh()
		return nil
	case chatReplyMsg:
		s.waiting = false
		if msg.err != nil {
			// the unanswered question stays out of the history
			s.messages = s.messages[:len(s.messages)-1]
			s.refresh()
			return failedWith(msgChatFailed, msg.err)
		}
		s.messages = append(s.messages, msg.reply)
		s.refresh()
		return nil
	case chatSavedMsg:
		if msg.err != nil {
			return failed("Не удалось сохранить чат", msg.err)
		}
		return notice("Чат сохранен в архив")
	case tea.WindowSizeMsg:
		s.text.resize(msg)
		return nil
	case tea.KeyMsg:
		return s.updateKey(msg)
	}

	if s.input.Focused() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

func (s *chatScreen) updateKey(msg tea.KeyMsg) tea.Cmd {
	if s.input.Focused() {
		switch {
		case key.Matches(msg, keys.esc):
			s.input.Blur()
			return nil
		case key.Matches(msg, keys.enter):
			return s.send()
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, keys.enter):
		return s.input.Focus()
	case key.Matches(msg, keys.save):
		if s.hasConversation() {
			return s.cmdSave()
		}
		return notice("Нечего сохранять")
	case key.Matches(msg, keys.newChat):
		if s.waiting {
			return nil
		}
		s.messages = nil
		s.refresh()
		s.waiting = true
		return s.cmdGreeting()
	}
	return s.text.update(msg)
}

func (s *chatScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.waiting {
		return nil
	}

	history := append([]models.ChatMessage(nil), s.messages...)
	s.messages = append(s.messages, models.ChatMessage{Role: models.ChatRoleUser, Text: text})
	s.input.SetValue("")
	s.waiting = true
	s.refresh()

	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		reply, err := api.Chat(ctx, models.ChatRequest{History: history, Message: text})
		return chatReplyMsg{reply: reply, err: err}
	}
}

// hasConversation is true once the user has said something.
func (s *chatScreen) hasConversation() bool {
	for _, m := range s.messages {
		if m.Role == models.ChatRoleUser {
			return true
		}
	}
	return false
}

func (s *chatScreen) refresh() {
	var b strings.Builder
	for _, m := range s.messages {
		if m.Role == models.ChatRoleUser {
			b.WriteString(titleStyle.Render("Вы: "))
		} else {
			b.WriteString(titleStyle.Render("Ассистент: "))
		}
		b.WriteString(m.Text)
		b.WriteString("\n\n")
	}
	if s.waiting {
		b.WriteString(helpStyle.Render("Ассистент печатает..."))
	}
	s.text.setTextAtBottom(strings.TrimRight(b.String(), "\n"))
}

func (s *chatScreen) HotKeys() string {
	if s.input.Focused() {
		return "enter: отправить │ esc: к истории"
	}
	return "enter: написать │ s: сохранить чат │ n: новый чат │ ↑/↓: прокрутка"
}

func (s *chatScreen) View() string {
	body := s.text.View()
	if len(s.messages) == 0 && s.waiting {
		body = "Загрузка..."
	}
	return body + "\n\n> " + s.input.View()
}

func (s *chatScreen) cmdGreeting() tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		greeting, err := api.Greeting(ctx)
		return greetingMsg{greeting: greeting, err: err}
	}
}

func (s *chatScreen) cmdSave() tea.Cmd {
	ctx, api := s.ctx, s.api
	messages := append([]models.ChatMessage(nil), s.messages...)
	return func() tea.Msg {
		archived, err := api.SaveChat(ctx, messages)
		return chatSavedMsg{archived: archived, err: err}
	}
}
