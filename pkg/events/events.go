package events

import "time"

// Exchange names
const (
	ExchangeOrders = "orders.events"
)

// Routing keys for order lifecycle events
const (
	RoutingKeyOrderPlaced    = "order.placed"
	RoutingKeyOrderPaid      = "order.paid"
	RoutingKeyOrderShipped   = "order.shipped"
	RoutingKeyOrderDelivered = "order.delivered"
	RoutingKeyOrderCancelled = "order.cancelled"
)

// Envelope is the wire format for events published to the broker
type Envelope struct {
	Version   string      `json:"version"`
	EventType string      `json:"event_type"`
	Timestamp time.Time   `json:"timestamp"`
	TraceID   string      `json:"trace_id"`
	Payload   interface{} `json:"payload"`
}

// NewEnvelope wraps a payload in the versioned wire format
func NewEnvelope(eventType, traceID string, payload interface{}) *Envelope {
	return &Envelope{
		Version:   "1.0",
		EventType: eventType,
		Timestamp: time.Now(),
		TraceID:   traceID,
		Payload:   payload,
	}
}
