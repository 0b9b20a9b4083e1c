// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/dia-companion/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestEmailCtxKey(t *testing.T) {
	if EmailCtxKey.String() != "email" {
		t.Errorf("expected 'email', got '%s'", EmailCtxKey.String())
	}
}

func TestWithUser(t *testing.T) {
	ctx := WithUser(context.Background(), "a@b.c", models.RoleAdmin)

	email, ok := GetEmailFromContext(ctx)
	if !ok || email != "a@b.c" {
		t.Fatalf("expected email a@b.c, got %q (ok=%v)", email, ok)
	}

	role, ok := GetRoleFromContext(ctx)
	if !ok || role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q (ok=%v)", role, ok)
	}
}

func TestGetEmailFromContext_Missing(t *testing.T) {
	email, ok := GetEmailFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing key, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got %q", email)
	}
}

func TestGetEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, 42)

	if _, ok := GetEmailFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type, got true")
	}
}

func TestGetEmailFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), EmailCtxKey, "")

	if _, ok := GetEmailFromContext(ctx); ok {
		t.Error("expected ok=false for empty email, got true")
	}
}

func TestGetRoleFromContext_Missing(t *testing.T) {
	if _, ok := GetRoleFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing role, got true")
	}
}
