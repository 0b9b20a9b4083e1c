// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password hashing modes accepted by [NewPasswordHasher].
const (
	ModeBcrypt = "bcrypt"
	ModePlain  = "plain"
)

// ErrUnknownHashingMode is returned by [NewPasswordHasher] for an
// unrecognised mode.
var ErrUnknownHashingMode = errors.New("unknown password hashing mode")

// NewPasswordHasher returns the hasher for mode. An empty mode selects bcrypt.
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case ModeBcrypt, "":
		return NewBcryptHasher(bcrypt.DefaultCost), nil
	case ModePlain:
		return NewPlainHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashingMode, mode)
	}
}

// bcryptHasher stores salted bcrypt digests.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed [PasswordHasher]. Costs outside
// bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func (h *bcryptHasher) Compare(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// plainHasher keeps passwords as they are. It exists for stores created by
// older versions of the diary that never hashed credentials.
type plainHasher struct{}

// NewPlainHasher returns a [PasswordHasher] that stores passwords verbatim
// and compares them in constant time.
func NewPlainHasher() PasswordHasher {
	return plainHasher{}
}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Compare(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
