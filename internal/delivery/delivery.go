// Package delivery holds the inbound adapters of the client.
package delivery

import "context"

// Delivery is a long-running inbound server started after the fx app is built.
type Delivery interface {
	Serve(ctx context.Context) error
}
