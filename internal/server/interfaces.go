package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer listens on the configured address and blocks until
	// SIGTERM, SIGINT or SIGQUIT is received and shutdown has completed.
	RunServer() error

	// Serve accepts connections on ln until ctx is done, then shuts down
	// gracefully.
	Serve(ctx context.Context, ln net.Listener) error
}
