// File: api/shutdown.go
// Package api defines unified graceful shutdown contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// GracefulShutdown is implemented by components that own goroutines.
type GracefulShutdown interface {
	// Shutdown stops every internal service and releases its resources.
	// Components without destructors rely on the owner calling it.
	Shutdown() error
}
