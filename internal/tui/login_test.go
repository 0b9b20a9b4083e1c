package tui

import (
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/internal/session"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
)

var anna = models.User{Email: "anna@example.com", Role: models.RoleUser}

func newLoginRoot(t *testing.T, api *mock.MockServerAdapter) (RootModel, store.SessionMarkerStore) {
	t.Helper()

	markers := store.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	gate := session.NewGate(api, markers, logger.Nop())

	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(testCtx, gate),
		pageRegister: NewRegisterModel(testCtx, gate),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.2.0", "2024-06-01", "abc123")), markers
}

// drive feeds msg into the root and then the flow messages its commands
// produce. Cursor blink messages are dropped, they only restart a timer.
func drive(r RootModel, msg tea.Msg) (RootModel, []tea.Msg) {
	model, cmd := r.Update(msg)
	r = model.(RootModel)

	if _, ok := msg.(tea.KeyMsg); ok && !isSubmitKey(msg) {
		return r, nil
	}

	var produced []tea.Msg
	for _, m := range exec(cmd) {
		switch m.(type) {
		case tea.QuitMsg:
			produced = append(produced, m)
		case NavigateTo, LoginResult, RegisterResult, RegisterSuccessNotice:
			produced = append(produced, m)
			var more []tea.Msg
			r, more = drive(r, m)
			produced = append(produced, more...)
		}
	}
	return r, produced
}

func isSubmitKey(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && (k.Type == tea.KeyEnter || k.Type == tea.KeyEsc)
}

func quits(msgs []tea.Msg) bool {
	for _, m := range msgs {
		if _, ok := m.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func openLogin(t *testing.T, r RootModel) RootModel {
	t.Helper()
	r, _ = drive(r, press("enter"))
	require.Contains(t, r.View(), "ВХОД")
	return r
}

func TestLoginFlow_Success(t *testing.T) {
	api := newAPI(t)
	api.EXPECT().Login(gomock.Any(), models.Credentials{Email: anna.Email, Password: "s3cret"}).Return(anna, nil)
	api.EXPECT().Token().Return("jwt-token")

	r, markers := newLoginRoot(t, api)
	r = openLogin(t, r)

	r, _ = drive(r, press(anna.Email))
	r, _ = drive(r, press("tab"))
	r, _ = drive(r, press("s3cret"))
	r, produced := drive(r, press("enter"))

	assert.True(t, quits(produced))
	assert.False(t, r.quitByUser)
	assert.Equal(t, anna.Email, r.user.Email)

	marker, err := markers.Read()
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", marker.Token)
}

func TestLoginFlow_WrongPassword(t *testing.T) {
	api := newAPI(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, fmt.Errorf("login: %w", adapter.ErrUnauthorized))

	r, _ := newLoginRoot(t, api)
	r = openLogin(t, r)

	r, _ = drive(r, press(anna.Email))
	r, _ = drive(r, press("tab"))
	r, _ = drive(r, press("wrong"))
	r, produced := drive(r, press("enter"))

	assert.False(t, quits(produced))
	assert.Contains(t, r.View(), msgWrongCredentials)
}

func TestLoginFlow_EmptyFields(t *testing.T) {
	r, _ := newLoginRoot(t, newAPI(t))
	r = openLogin(t, r)

	r, produced := drive(r, press("enter"))

	assert.False(t, quits(produced))
	assert.Contains(t, r.View(), msgFillAllFields)
}

func TestLoginFlow_EscReturnsToMenu(t *testing.T) {
	r, _ := newLoginRoot(t, newAPI(t))
	r = openLogin(t, r)

	r, _ = drive(r, press("esc"))
	assert.Contains(t, r.View(), "Зарегистрироваться")
}

func TestRegister_SuccessReturnsToMenu(t *testing.T) {
	api := newAPI(t)
	api.EXPECT().Register(gomock.Any(), models.Credentials{Email: anna.Email, Password: "s3cret"}).Return(anna, nil)

	r, _ := newLoginRoot(t, api)
	r, _ = drive(r, press("down"))
	r, _ = drive(r, press("enter"))
	require.Contains(t, r.View(), "РЕГИСТРАЦИЯ")

	r, _ = drive(r, press(anna.Email))
	r, _ = drive(r, press("tab"))
	r, _ = drive(r, press("s3cret"))
	r, _ = drive(r, press("tab"))
	r, _ = drive(r, press("s3cret"))
	r, produced := drive(r, press("enter"))

	assert.False(t, quits(produced), "registration must not log in")
	view := r.View()
	assert.Contains(t, view, "ГЛАВНОЕ МЕНЮ")
	assert.Contains(t, view, msgRegistered)
}

func TestRegister_Errors(t *testing.T) {
	t.Run("passwords differ", func(t *testing.T) {
		r, _ := newLoginRoot(t, newAPI(t))
		r, _ = drive(r, press("down"))
		r, _ = drive(r, press("enter"))

		r, _ = drive(r, press(anna.Email))
		r, _ = drive(r, press("tab"))
		r, _ = drive(r, press("one"))
		r, _ = drive(r, press("tab"))
		r, _ = drive(r, press("two"))
		r, _ = drive(r, press("enter"))

		assert.Contains(t, r.View(), msgPasswordsDiffer)
	})

	t.Run("email taken", func(t *testing.T) {
		api := newAPI(t)
		api.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrConflict)

		r, _ := newLoginRoot(t, api)
		r, _ = drive(r, press("down"))
		r, _ = drive(r, press("enter"))

		r, _ = drive(r, press(anna.Email))
		r, _ = drive(r, press("tab"))
		r, _ = drive(r, press("pw"))
		r, _ = drive(r, press("tab"))
		r, _ = drive(r, press("pw"))
		r, _ = drive(r, press("enter"))

		assert.Contains(t, r.View(), msgUserExists)
	})
}

func TestRootModel_BuildInfo(t *testing.T) {
	r, _ := newLoginRoot(t, newAPI(t))

	r, _ = drive(r, press("v"))
	view := r.View()
	assert.Contains(t, view, "Название приложения: DiaCompanion")
	assert.Contains(t, view, "Версия: v1.2.0")
	assert.Contains(t, view, "Коммит: abc123")

	r, _ = drive(r, press("esc"))
	assert.Contains(t, r.View(), "ГЛАВНОЕ МЕНЮ")
}

func TestRootModel_CtrlC(t *testing.T) {
	r, _ := newLoginRoot(t, newAPI(t))

	model, cmd := r.Update(press("ctrl+c"))

	assert.True(t, model.(RootModel).quitByUser)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
