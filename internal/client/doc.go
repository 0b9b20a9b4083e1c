// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dia-companion command-line client.
//
// Commands talk to the server through [adapter.ServerAdapter]. The logged-in
// user and the bearer token survive between runs in a session marker file
// managed by [session.Gate].
package client
