package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
)

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type userDeletedMsg struct {
	email string
	err   error
}

// usersScreen is the account management of an administrator.
type usersScreen struct {
	ctx  context.Context
	api  adapter.ServerAdapter
	self models.User

	users   []models.User
	cursor  cursor
	loading bool
	confirm *confirmModel
}

func newUsersScreen(ctx context.Context, api adapter.ServerAdapter, self models.User) *usersScreen {
	return &usersScreen{ctx: ctx, api: api, self: self}
}

func (s *usersScreen) Init() tea.Cmd {
	s.loading = true
	return s.cmdLoad()
}

func (s *usersScreen) Capturing() bool {
	return s.confirm != nil
}

func (s *usersScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		s.loading = false
		if msg.err != nil {
			return failedWith("Не удалось загрузить список пользователей.", msg.err)
		}
		s.users = msg.users
		s.cursor.clamp(len(s.users))
		return nil
	case userDeletedMsg:
		if msg.err != nil {
			return failed("Не удалось удалить пользователя", msg.err)
		}
		return tea.Batch(
			notice(fmt.Sprintf("Пользователь %s и все его данные были успешно удалены.", msg.email)),
			s.cmdLoad(),
		)
	case tea.KeyMsg:
		return s.updateKey(msg)
	}
	return nil
}

func (s *usersScreen) updateKey(msg tea.KeyMsg) tea.Cmd {
	if s.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			s.confirm = nil
			if u, ok := s.current(); ok {
				return s.cmdDelete(u.Email)
			}
		case key.Matches(msg, keys.no, keys.esc):
			s.confirm = nil
		}
		return nil
	}

	if s.cursor.move(msg, len(s.users)) {
		return nil
	}

	switch {
	case key.Matches(msg, keys.delete):
		u, ok := s.current()
		if !ok {
			return nil
		}
		if strings.EqualFold(u.Email, s.self.Email) {
			return alert(msgCannotDeleteSelf)
		}
		s.confirm = &confirmModel{message: fmt.Sprintf(
			"Вы уверены, что хотите удалить пользователя %s? Все данные этого пользователя будут безвозвратно удалены.", u.Email)}
	case key.Matches(msg, keys.reload):
		s.loading = true
		return s.cmdLoad()
	}
	return nil
}

func (s *usersScreen) current() (models.User, bool) {
	if !s.cursor.valid(len(s.users)) {
		return models.User{}, false
	}
	return s.users[s.cursor.idx], true
}

func (s *usersScreen) HotKeys() string {
	if s.confirm != nil {
		return "y: да │ n: нет"
	}
	return "↑/↓: навигация │ ctrl+d: удалить │ r: обновить"
}

func (s *usersScreen) View() string {
	if s.confirm != nil {
		return s.confirm.View()
	}
	if s.loading {
		return "Загрузка..."
	}
	if len(s.users) == 0 {
		return "Нет пользователей"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-32s │ %s\n", "Email", "Роль"))
	b.WriteString("  " + strings.Repeat("─", 33) + "┼" + strings.Repeat("─", 16) + "\n")
	for i, u := range s.users {
		email := fitText(u.Email, 32)
		if strings.EqualFold(u.Email, s.self.Email) {
			email = fitText(u.Email+" (вы)", 32)
		}
		b.WriteString(fmt.Sprintf("%s %-32s │ %s\n", cursorMark(i == s.cursor.idx), email, roleLabel(u.Role)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *usersScreen) cmdLoad() tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		users, err := api.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (s *usersScreen) cmdDelete(email string) tea.Cmd {
	ctx, api := s.ctx, s.api
	return func() tea.Msg {
		return userDeletedMsg{email: email, err: api.DeleteUser(ctx, email)}
	}
}
