package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// NavigateTo switches the page of a [RootModel]. A set Payload is delivered
// to the new page instead of running its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult without an error ends the login flow.
type LoginResult struct {
	Email string
	User  models.User
	Err   error
}

type RegisterResult struct {
	Email string
	Err   error
}

type RegisterSuccessNotice struct {
	Email string
}

// failedMsg opens the error overlay of the main loop.
type failedMsg struct {
	text string
	err  error
}

func failed(action string, err error) tea.Cmd {
	return func() tea.Msg {
		return failedMsg{text: action + ": " + humanizeError(err), err: err}
	}
}

// alert opens the error overlay with a fixed text.
func alert(text string) tea.Cmd {
	return func() tea.Msg { return failedMsg{text: text} }
}

// noticeMsg replaces the status line of the main loop.
type noticeMsg string

func notice(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg(text) }
}

// failedWith opens the overlay with a fixed text. An expired session keeps
// its own text so the user knows why the main loop closes.
func failedWith(text string, err error) tea.Cmd {
	if errors.Is(err, adapter.ErrUnauthorized) {
		text = msgSessionExpired
	}
	return func() tea.Msg { return failedMsg{text: text, err: err} }
}
