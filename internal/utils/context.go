// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/dia-companion/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key used to store the authenticated user's email in
// the context.
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "user@example.com")
var EmailCtxKey = contextKey("email")

// RoleCtxKey is the key used to store the authenticated user's role.
var RoleCtxKey = contextKey("role")

// WithUser returns a copy of ctx carrying the user's email and role.
func WithUser(ctx context.Context, email string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, EmailCtxKey, email)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetEmailFromContext retrieves the user email from the context.
//
// ok is false when the value is missing, empty or has an unexpected type.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok && email != ""
}

// GetRoleFromContext retrieves the user role from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
