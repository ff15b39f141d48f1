// Package delivery defines the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long-running inbound surface started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
