package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the registration screen. Registration does not log in:
// on success the menu opens with a notice.
type RegisterModel struct {
	ctx  context.Context
	gate authGate

	form       form
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, gate authGate) *RegisterModel {
	f := newForm("Email", "Пароль", "Повтор пароля")
	f.inputs[0].Placeholder = "email"
	f.inputs[0].CharLimit = 254
	f.inputs[1].Placeholder = "password"
	f.inputs[2].Placeholder = "repeat password"
	f.masked(1)
	f.masked(2)

	return &RegisterModel{ctx: ctx, gate: gate, form: f}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeLoginError(result.Err)
			return m, nil
		}

		m.form.reset()
		m.errMsg = ""
		email := result.Email
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Email: email}}
		}
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
			repeat := m.form.inputs[2].Value()
			switch {
			case email == "" || password == "" || repeat == "":
				m.errMsg = msgFillAllFields
				return m, nil
			case password != repeat:
				m.errMsg = msgPasswordsDiffer
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(email, password string) tea.Cmd {
	ctx := m.ctx
	gate := m.gate

	return func() tea.Msg {
		_, err := gate.Register(ctx, email, password)
		return RegisterResult{Email: email, Err: err}
	}
}
