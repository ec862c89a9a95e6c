package adapters

import (
	"context"

	"go-shop/internal/orders/domain"
	"go-shop/pkg/eventbus"
)

// BusPublisher publishes domain events on the in-process event bus
type BusPublisher struct {
	bus *eventbus.Bus
}

// NewBusPublisher creates a new bus-backed event publisher
func NewBusPublisher(bus *eventbus.Bus) *BusPublisher {
	return &BusPublisher{bus: bus}
}

// Publish dispatches the event synchronously to all subscribers
func (p *BusPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	return p.bus.Publish(ctx, event)
}
