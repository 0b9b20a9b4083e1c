package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/internal/validators"
	"github.com/MKhiriev/dia-companion/models"
)

// authService registers and authenticates users against the document store
// and issues the bearer tokens of the HTTP API.
type authService struct {
	users     store.UserRepository
	validator validators.Validator

	// adminEmails receive the admin role at registration. Lower-cased.
	adminEmails []string

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction.
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	admins := make([]string, 0, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		admins = append(admins, normalizeEmail(email))
	}

	return &authService{
		users:         users,
		validator:     validators.NewCredentialsValidator(),
		adminEmails:   admins,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates an account. Emails are compared case-insensitively, so
// they are stored lower-cased. Returns store.ErrUserAlreadyExists (wrapped)
// for a taken email.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	role := models.RoleUser
	if slices.Contains(a.adminEmails, creds.Email) {
		role = models.RoleAdmin
	}

	user, err := a.users.AddUser(ctx, models.User{Email: creds.Email, Password: creds.Password, Role: role})
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Login returns the account matching creds. An unknown email and a wrong
// password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, err
	}

	user, found, err := a.users.GetUser(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}
	if !found {
		log.Warn().Str("email", creds.Email).Msg("wrong email or password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalizes every validation failure to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
