package client

import (
	"strings"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/adapter"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminUsers(t *testing.T) {
	c := newTestClient(t)
	c.seedSessionAs(t, models.RoleAdmin)
	c.api.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
		{Email: testEmail, Role: models.RoleAdmin},
		{Email: "boris@example.com", Role: models.RoleUser},
	}, nil)

	out, err := c.run("", "admin", "users")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "boris@example.com")
	assert.Contains(t, lines[2], "user")
}

func TestAdminUsersDelete(t *testing.T) {
	c := newTestClient(t)
	c.seedSessionAs(t, models.RoleAdmin)
	c.api.EXPECT().DeleteUser(gomock.Any(), "boris@example.com").Return(nil)
	c.api.EXPECT().DeleteUser(gomock.Any(), testEmail).Return(adapter.ErrForbidden)

	out, err := c.run("", "admin", "users", "delete", "boris@example.com")
	require.NoError(t, err)
	assert.Equal(t, "deleted boris@example.com\n", out)

	_, err = c.run("", "admin", "users", "delete", testEmail)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestAdmin_RegularUserIsRefused(t *testing.T) {
	for _, args := range [][]string{
		{"admin", "users"},
		{"admin", "users", "delete", "boris@example.com"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			c := newTestClient(t)
			c.seedSession(t)

			_, err := c.run("", args...)
			assert.ErrorIs(t, err, errAdminOnly)
		})
	}
}
