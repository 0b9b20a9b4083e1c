package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/app"
	"github.com/MKhiriev/dia-companion/internal/service"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListUsers_HidesPasswords(t *testing.T) {
	a := newTestAPI(t)
	a.admin.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
		{Email: adminEmail, Password: "hash-1", Role: models.RoleAdmin},
		{Email: userEmail, Password: "hash-2", Role: models.RoleUser},
	})

	rec := a.do(http.MethodGet, "/api/admin/users", adminToken, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash-")
	assert.Len(t, decodeBody[[]models.User](t, rec), 2)
}

func TestDeleteUser(t *testing.T) {
	a := newTestAPI(t)
	a.admin.EXPECT().DeleteUser(gomock.Any(), adminEmail, userEmail).Return(nil)

	rec := a.do(http.MethodDelete, "/api/admin/users/anna%40example.com", adminToken, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteUser_Self(t *testing.T) {
	a := newTestAPI(t)
	a.admin.EXPECT().DeleteUser(gomock.Any(), adminEmail, adminEmail).Return(service.ErrCannotDeleteSelf)

	rec := a.do(http.MethodDelete, "/api/admin/users/"+adminEmail, adminToken, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgCannotDeleteSelf, errorBody(t, rec).Error)
}
