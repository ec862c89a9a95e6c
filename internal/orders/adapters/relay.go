package adapters

import (
	"context"

	"go-shop/internal/orders/domain"
	"go-shop/pkg/eventbus"
	"go-shop/pkg/events"
	"go-shop/pkg/logger"
	"go-shop/pkg/rabbitmq"
)

// lifecycleEvents lists every event name the relay forwards
var lifecycleEvents = []string{
	domain.EventOrderPlaced,
	domain.EventOrderPaid,
	domain.EventOrderShipped,
	domain.EventOrderDelivered,
	domain.EventOrderCancelled,
}

// BrokerRelay forwards order lifecycle events from the in-process bus
// to RabbitMQ. The event name doubles as the routing key.
type BrokerRelay struct {
	publisher *rabbitmq.Publisher
	log       *logger.Logger
}

// NewBrokerRelay creates a new broker relay
func NewBrokerRelay(publisher *rabbitmq.Publisher, log *logger.Logger) *BrokerRelay {
	return &BrokerRelay{
		publisher: publisher,
		log:       log,
	}
}

// Register subscribes the relay to every order lifecycle event
func (r *BrokerRelay) Register(bus *eventbus.Bus) {
	for _, name := range lifecycleEvents {
		bus.Subscribe(name, r.forward)
	}
}

func (r *BrokerRelay) forward(ctx context.Context, event eventbus.Event) error {
	envelope := events.NewEnvelope(event.EventName(), logger.GetTraceID(ctx), event)
	return r.publisher.Publish(ctx, event.EventName(), envelope)
}
