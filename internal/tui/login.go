// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login screen. A successful login produces a
// [LoginResult] that [RootModel] turns into the end of the login flow.
type LoginModel struct {
	ctx  context.Context
	gate authGate

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, gate authGate) *LoginModel {
	f := newForm("Email", "Пароль")
	f.inputs[0].Placeholder = "email"
	f.inputs[0].CharLimit = 254
	f.inputs[1].Placeholder = "password"
	f.inputs[1].CharLimit = 256
	f.masked(1)

	return &LoginModel{ctx: ctx, gate: gate, form: f}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeLoginError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := m.form.value(0)
			password := m.form.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = msgFillAllFields
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		user, err := gate.Login(ctx, email, password)
		return LoginResult{Email: email, User: user, Err: err}
	}
}
