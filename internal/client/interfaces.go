// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract for runnable client applications.
type Client interface {
	// Run executes the command line given in args and returns when the
	// command finishes.
	Run(ctx context.Context, args []string) error
}
