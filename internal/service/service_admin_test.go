package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAdminService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	want := []models.User{{Email: "a@example.com", Role: models.RoleAdmin}, {Email: "b@example.com", Role: models.RoleUser}}
	users.EXPECT().GetAllUsers(gomock.Any()).Return(want)

	got := NewAdminService(users, logger.Nop()).ListUsers(context.Background())
	assert.Equal(t, want, got)
}

func TestAdminService_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		target  string
		setup   func(users *mock.MockUserRepository)
		wantErr error
	}{
		{
			name:   "deletes normalized email",
			actor:  "boss@example.com",
			target: " Anna@Example.com ",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().DeleteUserAndData(gomock.Any(), "anna@example.com").Return(nil)
			},
		},
		{
			name:    "refuses self deletion",
			actor:   "Boss@example.com",
			target:  "boss@example.com",
			wantErr: ErrCannotDeleteSelf,
		},
		{
			name:    "empty target",
			actor:   "boss@example.com",
			target:  "  ",
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:   "store failure",
			actor:  "boss@example.com",
			target: "anna@example.com",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().DeleteUserAndData(gomock.Any(), "anna@example.com").Return(store.ErrStoreUnavailable)
			},
			wantErr: store.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			if tt.setup != nil {
				tt.setup(users)
			}

			err := NewAdminService(users, logger.Nop()).DeleteUser(context.Background(), tt.actor, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
