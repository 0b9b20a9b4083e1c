// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches a store.
//
// Every validator reports all invalid fields of a value at once through a
// [ValidationError], which the HTTP layer turns into a 422 response with
// per-field messages.
package validators

import "context"

// Validator checks one kind of value. fields restricts the check to the
// named fields; without fields every rule applies.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
