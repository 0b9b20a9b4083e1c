package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
)

type adminService struct {
	users store.UserRepository

	logger *logger.Logger
}

func NewAdminService(users store.UserRepository, logger *logger.Logger) AdminService {
	return &adminService{users: users, logger: logger}
}

func (s *adminService) ListUsers(ctx context.Context) []models.User {
	return s.users.GetAllUsers(ctx)
}

func (s *adminService) DeleteUser(ctx context.Context, actor, email string) error {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" {
		return ErrInvalidDataProvided
	}
	if email == normalizeEmail(actor) {
		return ErrCannotDeleteSelf
	}

	if err := s.users.DeleteUserAndData(ctx, email); err != nil {
		log.Err(err).Str("func", "adminService.DeleteUser").Str("email", email).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	log.Info().Str("admin", actor).Str("email", email).Msg("user deleted with all data")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
