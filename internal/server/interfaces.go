package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// Run starts serving requests and blocks until ctx is done or serving
	// fails. On ctx cancellation the server is shut down gracefully and Run
	// returns nil.
	Run(ctx context.Context) error
}
