// Package server runs the application's transport servers.
//
// It starts the HTTP API and the gRPC health service, and stops both
// gracefully once the run context is cancelled.
package server
