// Package delivery defines the inbound transport contract shared by all
// server entry points.
package delivery

import "context"

// Delivery is a transport that accepts requests until the context or the
// fx lifecycle shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
