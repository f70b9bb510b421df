// Package delivery defines the contract every transport implementation
// (HTTP server, worker, etc.) fulfils so the application can run them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves requests until its
// context is cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
