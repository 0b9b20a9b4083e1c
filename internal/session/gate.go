// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the authentication state of one running client.
//
// A [Gate] moves between three states:
//
//	LoggedOut --Login--> Authenticating --ok--> LoggedIn
//	                           |
//	                           +--error--> LoggedOut
//
// A successful login is remembered in a [store.SessionMarkerStore] so that the
// next run can [Gate.Restore] it without asking for the password again. The
// password itself is never logged and never written to the marker.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/store"
	"github.com/MKhiriev/dia-companion/models"
)

// Authenticator checks credentials. The server-side auth service and the
// HTTP API adapter both satisfy it.
type Authenticator interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// tokenHolder is implemented by authenticators that keep a bearer token
// which has to survive a restart.
type tokenHolder interface {
	Token() string
	SetToken(token string)
}

// remoteLogout is implemented by authenticators that hold a server session.
type remoteLogout interface {
	Logout(ctx context.Context) error
}

// State is the position of a [Gate] in its state machine.
type State int

const (
	StateLoggedOut State = iota
	StateAuthenticating
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged out"
	case StateAuthenticating:
		return "authenticating"
	case StateLoggedIn:
		return "logged in"
	default:
		return "unknown"
	}
}

// Gate is safe for concurrent use.
type Gate struct {
	auth    Authenticator
	markers store.SessionMarkerStore

	mu    sync.Mutex
	state State
	user  models.User

	now func() time.Time

	logger *logger.Logger
}

// NewGate returns a gate in the LoggedOut state.
func NewGate(auth Authenticator, markers store.SessionMarkerStore, logger *logger.Logger) *Gate {
	return &Gate{
		auth:    auth,
		markers: markers,
		state:   StateLoggedOut,
		now:     time.Now,
		logger:  logger,
	}
}

// State returns the current state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// User returns the logged-in user without its password.
func (g *Gate) User() (models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != StateLoggedIn {
		return models.User{}, ErrNotLoggedIn
	}
	return g.user, nil
}

// Register creates an account. The state of the gate is not changed.
func (g *Gate) Register(ctx context.Context, email, password string) (models.User, error) {
	user, err := g.auth.Register(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		g.logger.Err(err).Str("func", "Gate.Register").Str("email", email).Msg("registration failed")
		return models.User{}, err
	}

	return user.Public(), nil
}

// Login authenticates the user and remembers the session. A failed attempt
// leaves the gate LoggedOut, even if it was LoggedIn before.
func (g *Gate) Login(ctx context.Context, email, password string) (models.User, error) {
	g.mu.Lock()
	if g.state == StateAuthenticating {
		g.mu.Unlock()
		return models.User{}, ErrLoginInProgress
	}
	g.state = StateAuthenticating
	g.user = models.User{}
	g.mu.Unlock()

	user, err := g.auth.Login(ctx, models.Credentials{Email: email, Password: password})

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.state = StateLoggedOut
		g.logger.Warn().Err(err).Str("func", "Gate.Login").Str("email", email).Msg("login failed")
		return models.User{}, err
	}

	g.state = StateLoggedIn
	g.user = user.Public()

	marker := models.SessionMarker{Email: g.user.Email, Role: g.user.Role, At: g.now().UTC()}
	if holder, ok := g.auth.(tokenHolder); ok {
		marker.Token = holder.Token()
	}
	if err = g.markers.Write(marker); err != nil {
		// the session still works, it just will not survive a restart
		g.logger.Err(err).Str("func", "Gate.Login").Msg("session marker was not saved")
	}

	g.logger.Info().Str("email", g.user.Email).Msg("logged in")
	return g.user, nil
}

// Logout forgets the session. Logging out while LoggedOut only clears a
// stale marker.
func (g *Gate) Logout(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateAuthenticating {
		return ErrLoginInProgress
	}

	if remote, ok := g.auth.(remoteLogout); ok && g.state == StateLoggedIn {
		if err := remote.Logout(ctx); err != nil {
			g.logger.Warn().Err(err).Str("func", "Gate.Logout").Msg("server logout failed")
		}
	}

	g.state = StateLoggedOut
	g.user = models.User{}

	if err := g.markers.Clear(); err != nil {
		g.logger.Err(err).Str("func", "Gate.Logout").Msg("session marker was not removed")
		return err
	}

	return nil
}

// Restore enters LoggedIn from the saved session marker without contacting
// the authenticator. A missing or unreadable marker leaves the gate
// LoggedOut and returns ErrNoSession.
func (g *Gate) Restore(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == StateAuthenticating {
		return models.User{}, ErrLoginInProgress
	}

	marker, err := g.markers.Read()
	if err != nil {
		g.state = StateLoggedOut
		g.user = models.User{}

		if errors.Is(err, store.ErrCorruptSessionMarker) {
			log.Warn().Err(err).Str("func", "Gate.Restore").Msg("discarding corrupt session marker")
			_ = g.markers.Clear()
		}
		return models.User{}, errors.Join(ErrNoSession, err)
	}

	role := marker.Role
	if !role.IsValid() {
		role = models.RoleUser
	}

	if holder, ok := g.auth.(tokenHolder); ok {
		holder.SetToken(marker.Token)
	}

	g.state = StateLoggedIn
	g.user = models.User{Email: marker.Email, Role: role}

	return g.user, nil
}
