package tui

import (
	"context"

	"github.com/MKhiriev/dia-companion/models"
)

// authGate is the part of [session.Gate] the screens use. The gate writes
// the session marker, so a login made here survives a restart of the
// client.
type authGate interface {
	Register(ctx context.Context, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (models.User, error)
}
