// Package delivery holds the transports that expose the studio: the public
// API and the order worker.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
