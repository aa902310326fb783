// Package delivery defines the transports that expose the application.
package delivery

import "context"

// Delivery is a server started by the application and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
