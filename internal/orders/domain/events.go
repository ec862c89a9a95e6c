package domain

import "time"

// Event names, also used as broker routing keys
const (
	EventOrderPlaced    = "order.placed"
	EventOrderPaid      = "order.paid"
	EventOrderShipped   = "order.shipped"
	EventOrderDelivered = "order.delivered"
	EventOrderCancelled = "order.cancelled"
)

// DomainEvent is an immutable record of something that happened inside
// the aggregate. Events accumulate on the Order until the application
// layer drains and publishes them.
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// OrderPlacedEvent is recorded when an order transitions to PLACED
type OrderPlacedEvent struct {
	OrderID    OrderID    `json:"order_id"`
	CustomerID CustomerID `json:"customer_id"`
	Total      Money      `json:"total"`
	Timestamp  time.Time  `json:"timestamp"`
}

func (e OrderPlacedEvent) EventName() string     { return EventOrderPlaced }
func (e OrderPlacedEvent) OccurredAt() time.Time { return e.Timestamp }

// OrderPaidEvent is recorded when payment for an order is processed
type OrderPaidEvent struct {
	OrderID   OrderID   `json:"order_id"`
	Total     Money     `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

func (e OrderPaidEvent) EventName() string     { return EventOrderPaid }
func (e OrderPaidEvent) OccurredAt() time.Time { return e.Timestamp }

// OrderShippedEvent is recorded when an order ships
type OrderShippedEvent struct {
	OrderID   OrderID   `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e OrderShippedEvent) EventName() string     { return EventOrderShipped }
func (e OrderShippedEvent) OccurredAt() time.Time { return e.Timestamp }

// OrderDeliveredEvent is recorded when an order is delivered
type OrderDeliveredEvent struct {
	OrderID   OrderID   `json:"order_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e OrderDeliveredEvent) EventName() string     { return EventOrderDelivered }
func (e OrderDeliveredEvent) OccurredAt() time.Time { return e.Timestamp }

// OrderCancelledEvent is recorded when an order is cancelled
type OrderCancelledEvent struct {
	OrderID        OrderID   `json:"order_id"`
	PreviousStatus Status    `json:"previous_status"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e OrderCancelledEvent) EventName() string     { return EventOrderCancelled }
func (e OrderCancelledEvent) OccurredAt() time.Time { return e.Timestamp }
