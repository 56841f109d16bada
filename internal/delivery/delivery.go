// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a server the application exposes, collected into the
// `deliveries` Fx group and started together.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
