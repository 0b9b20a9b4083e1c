// Package workers runs the background workers of the server.
//
// A [Worker] runs until its context is cancelled. [Workers] starts a set of
// them and waits for all to return.
package workers

import "context"

// Worker is implemented by any background worker. Run blocks until ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// AvailabilityChecker reports whether a dependency can serve requests.
type AvailabilityChecker interface {
	Available(ctx context.Context) bool
}

// StatusReporter receives the outcome of every availability check.
type StatusReporter interface {
	SetServing(serving bool)
}
