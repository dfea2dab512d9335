package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// Run starts serving requests and blocks until ctx is cancelled or a
	// transport fails. All transports are shut down gracefully before it
	// returns.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is a single listening server.
type transport interface {
	name() string
	serve() error
	shutdown()
}
