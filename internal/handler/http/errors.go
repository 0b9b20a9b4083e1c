// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Bearer token extraction errors. All of them end in 401.
var (
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is missing")
	ErrInvalidAuthorizationHeader = errors.New("authorization header must use the Bearer scheme")
	ErrEmptyToken                 = errors.New("bearer token is empty")
)

// ErrNoUserInContext means a handler that needs a session was mounted
// outside the auth middleware.
var ErrNoUserInContext = errors.New("no authenticated user in request context")
