package adapters

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"go-shop/pkg/events"
	"go-shop/pkg/logger"
	"go-shop/pkg/rabbitmq"
)

// OrderAuditConsumer consumes order lifecycle events from the broker
// and writes them to the audit log
type OrderAuditConsumer struct {
	consumer *rabbitmq.Consumer
	log      *logger.Logger
}

// NewOrderAuditConsumer creates a consumer bound to every order routing key
func NewOrderAuditConsumer(conn *rabbitmq.Connection, log *logger.Logger) (*OrderAuditConsumer, error) {
	consumer, err := rabbitmq.NewConsumer(
		conn,
		"orders.audit",        // queue name
		events.ExchangeOrders, // exchange
		[]string{
			events.RoutingKeyOrderPlaced,
			events.RoutingKeyOrderPaid,
			events.RoutingKeyOrderShipped,
			events.RoutingKeyOrderDelivered,
			events.RoutingKeyOrderCancelled,
		},
		log,
	)
	if err != nil {
		return nil, err
	}

	return &OrderAuditConsumer{
		consumer: consumer,
		log:      log,
	}, nil
}

// Start starts consuming order lifecycle events
func (c *OrderAuditConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

func (c *OrderAuditConsumer) handleMessage(ctx context.Context, body []byte) error {
	var envelope events.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.log.WithContext(ctx).Error("failed to unmarshal event envelope",
			zap.Error(err),
		)
		return err
	}

	c.log.WithContext(ctx).Info("order event audited",
		zap.String("event_type", envelope.EventType),
		zap.Time("event_timestamp", envelope.Timestamp),
		zap.String("trace_id", envelope.TraceID),
		zap.Any("payload", envelope.Payload),
	)

	return nil
}
