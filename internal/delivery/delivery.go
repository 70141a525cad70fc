// Package delivery defines the outer surfaces that expose the planner.
package delivery

import "context"

// Delivery is a long-running surface (HTTP server, worker) started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
