package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/models"
)

var root = models.User{Email: "root@example.com", Role: models.RoleAdmin}

func loadedUsers(t *testing.T, api *mock.MockServerAdapter) *usersScreen {
	t.Helper()

	api.EXPECT().ListUsers(gomock.Any()).Return([]models.User{root, anna}, nil)

	s := newUsersScreen(testCtx, api, root)
	require.Empty(t, settle(s, s.Init()).failures)
	return s
}

func TestUsersScreen_List(t *testing.T) {
	s := loadedUsers(t, newAPI(t))

	view := s.View()
	assert.Contains(t, view, "root@example.com (вы)")
	assert.Contains(t, view, "Администратор")
	assert.Contains(t, view, "Пользователь")
}

func TestUsersScreen_CannotDeleteSelf(t *testing.T) {
	s := loadedUsers(t, newAPI(t))

	out := settle(s, s.Update(press("ctrl+d")))

	require.Len(t, out.failures, 1)
	assert.Equal(t, msgCannotDeleteSelf, out.failures[0].text)
	assert.False(t, s.Capturing())
}

func TestUsersScreen_Delete(t *testing.T) {
	api := newAPI(t)
	s := loadedUsers(t, api)

	s.Update(press("down"))
	s.Update(press("ctrl+d"))
	assert.Contains(t, s.View(), "Вы уверены, что хотите удалить пользователя anna@example.com? Все данные этого пользователя будут безвозвратно удалены.")

	api.EXPECT().DeleteUser(gomock.Any(), anna.Email).Return(nil)
	api.EXPECT().ListUsers(gomock.Any()).Return([]models.User{root}, nil)

	out := settle(s, s.Update(press("y")))

	assert.Equal(t, []string{"Пользователь anna@example.com и все его данные были успешно удалены."}, out.notices)
	assert.Len(t, s.users, 1)
}

func TestUsersScreen_LoadFailure(t *testing.T) {
	api := newAPI(t)
	api.EXPECT().ListUsers(gomock.Any()).Return(nil, assertErr)

	s := newUsersScreen(testCtx, api, root)
	out := settle(s, s.Init())

	require.Len(t, out.failures, 1)
	assert.Equal(t, "Не удалось загрузить список пользователей.", out.failures[0].text)
}
