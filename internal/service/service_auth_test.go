package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/mock"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "secret",
		TokenIssuer:   "dia-companion",
		TokenDuration: time.Hour,
		AdminEmails:   []string{" Boss@Example.com "},
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name     string
		creds    models.Credentials
		wantUser models.User
	}{
		{
			name:     "regular user with normalized email",
			creds:    models.Credentials{Email: "  Anna@Example.COM", Password: "pw"},
			wantUser: models.User{Email: "anna@example.com", Password: "pw", Role: models.RoleUser},
		},
		{
			name:     "configured admin",
			creds:    models.Credentials{Email: "boss@example.com", Password: "pw"},
			wantUser: models.User{Email: "boss@example.com", Password: "pw", Role: models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			users.EXPECT().AddUser(gomock.Any(), tt.wantUser).DoAndReturn(
				func(_ context.Context, u models.User) (models.User, error) {
					u.Password = "hashed"
					return u, nil
				},
			)

			svc := NewAuthService(users, testAppConfig(), logger.Nop())
			got, err := svc.Register(context.Background(), tt.creds)

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser.Email, got.Email)
			assert.Equal(t, tt.wantUser.Role, got.Role)
		})
	}
}

func TestAuthService_Register_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), testAppConfig(), logger.Nop())

	_, err := svc.Register(context.Background(), models.Credentials{Email: "not-an-email", Password: ""})

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, validators.FieldEmail)
	assert.Contains(t, vErr.Fields, validators.FieldPassword)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := mock.NewMockUserRepository(ctrl)
	users.EXPECT().AddUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	svc := NewAuthService(users, testAppConfig(), logger.Nop())
	_, err := svc.Register(context.Background(), models.Credentials{Email: "anna@example.com", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	found := models.User{Email: "anna@example.com", Role: models.RoleUser}

	tests := []struct {
		name    string
		setup   func(users *mock.MockUserRepository)
		wantErr error
	}{
		{
			name: "success",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUser(gomock.Any(), "anna@example.com", "pw").Return(found, true, nil)
			},
		},
		{
			name: "wrong password",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUser(gomock.Any(), "anna@example.com", "pw").Return(models.User{}, false, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name: "store down",
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().GetUser(gomock.Any(), "anna@example.com", "pw").Return(models.User{}, false, store.ErrStoreUnavailable)
			},
			wantErr: store.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mock.NewMockUserRepository(ctrl)
			tt.setup(users)

			svc := NewAuthService(users, testAppConfig(), logger.Nop())
			got, err := svc.Login(context.Background(), models.Credentials{Email: "ANNA@example.com", Password: "pw"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, found, got)
		})
	}
}

// ── Tokens ──────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), testAppConfig(), logger.Nop())
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{Email: "boss@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "boss@example.com", parsed.Email)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	other := testAppConfig()
	other.TokenSignKey = "another-secret"
	foreign, err := NewAuthService(mock.NewMockUserRepository(ctrl), other, logger.Nop()).
		CreateToken(ctx, models.User{Email: "anna@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	expiredCfg := testAppConfig()
	expiredCfg.TokenDuration = -time.Minute
	expired, err := NewAuthService(mock.NewMockUserRepository(ctrl), expiredCfg, logger.Nop()).
		CreateToken(ctx, models.User{Email: "anna@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	svc := NewAuthService(mock.NewMockUserRepository(ctrl), testAppConfig(), logger.Nop())
	for name, raw := range map[string]string{
		"garbage":      "not.a.token",
		"foreign key":  foreign.SignedString,
		"expired":      expired.SignedString,
		"empty string": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_CreateToken_Misconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testAppConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(mock.NewMockUserRepository(ctrl), cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{Email: "anna@example.com"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
