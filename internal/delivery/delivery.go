package delivery

import "context"

// Delivery is a transport serving the application until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
