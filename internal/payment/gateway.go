// Package payment provides the confirmation backend for transfer-style
// payment methods. The demo gateway resolves after a fixed delay, standing in
// for a provider round trip.
package payment

import (
	"context"
	"time"
)

// Gateway confirms a transfer payment request out of band. Confirm blocks
// until the provider answers or ctx is cancelled.
type Gateway interface {
	Confirm(ctx context.Context, upiID string) error
}

type simulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) Gateway {
	return &simulatedGateway{delay: delay}
}

// Confirm always succeeds after the configured delay. A real provider would
// surface declines and timeouts here; the demo never models them.
func (g *simulatedGateway) Confirm(ctx context.Context, _ string) error {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
