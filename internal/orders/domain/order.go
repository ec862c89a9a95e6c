package domain

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an order
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusPlaced    Status = "PLACED"
	StatusPaid      Status = "PAID"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether no further transition is possible
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order is the aggregate root. All access to its items goes through
// the aggregate, which keeps the total equal to the sum of the item
// subtotals and enforces the status state machine:
//
//	CREATED -> PLACED -> PAID -> SHIPPED -> DELIVERED
//	CREATED/PLACED/PAID -> CANCELLED
//
// Every mutation either fully applies or leaves the order untouched.
// Reads stay legal in every status, including terminal ones.
type Order struct {
	id              OrderID
	customerID      CustomerID
	items           []OrderItem
	status          Status
	shippingAddress string
	orderDate       time.Time
	total           Money

	events []DomainEvent
}

// NewOrder creates an empty order in status CREATED. The currency is
// fixed at creation; every item added later must match it.
func NewOrder(id OrderID, customerID CustomerID, shippingAddress string, currency Currency) (*Order, error) {
	if id == "" {
		return nil, ErrOrderIDRequired
	}
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if strings.TrimSpace(shippingAddress) == "" {
		return nil, ErrShippingAddressRequired
	}
	if _, ok := fractionDigits[currency]; !ok {
		return nil, ErrUnknownCurrency
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		items:           nil,
		status:          StatusCreated,
		shippingAddress: shippingAddress,
		orderDate:       time.Now().UTC(),
		total:           Zero(currency),
	}, nil
}

// AddItem adds a product line while the order is still CREATED.
// Adding a product already present merges by summing quantities; the
// existing line keeps its unit price.
func (o *Order) AddItem(productID ProductID, productName string, quantity int, unitPrice Money) error {
	if o.status != StatusCreated {
		return NewInvalidTransition(o.status, "add item")
	}

	item, err := newOrderItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return err
	}
	if unitPrice.Currency() != o.total.Currency() {
		return ErrCurrencyMismatch
	}

	if idx := o.itemIndex(productID); idx >= 0 {
		o.items[idx] = o.items[idx].withQuantity(o.items[idx].quantity + quantity)
	} else {
		o.items = append(o.items, item)
	}

	o.recalculateTotal()
	return nil
}

// RemoveItem removes a product line while the order is still CREATED
func (o *Order) RemoveItem(productID ProductID) error {
	if o.status != StatusCreated {
		return NewInvalidTransition(o.status, "remove item")
	}

	idx := o.itemIndex(productID)
	if idx < 0 {
		return NewItemNotFound(productID)
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)
	o.recalculateTotal()
	return nil
}

// UpdateItemQuantity replaces the quantity of an existing line while
// the order is still CREATED
func (o *Order) UpdateItemQuantity(productID ProductID, quantity int) error {
	if o.status != StatusCreated {
		return NewInvalidTransition(o.status, "update item quantity")
	}
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}

	idx := o.itemIndex(productID)
	if idx < 0 {
		return NewItemNotFound(productID)
	}

	o.items[idx] = o.items[idx].withQuantity(quantity)
	o.recalculateTotal()
	return nil
}

// Place transitions CREATED -> PLACED. The order must have at least
// one item. Records an OrderPlacedEvent.
func (o *Order) Place() error {
	if o.status != StatusCreated {
		return NewInvalidTransition(o.status, "place")
	}
	if len(o.items) == 0 {
		return ErrEmptyOrder
	}

	o.status = StatusPlaced
	o.record(OrderPlacedEvent{
		OrderID:    o.id,
		CustomerID: o.customerID,
		Total:      o.total,
		Timestamp:  time.Now().UTC(),
	})
	return nil
}

// Pay transitions PLACED -> PAID
func (o *Order) Pay() error {
	if o.status != StatusPlaced {
		return NewInvalidTransition(o.status, "process payment")
	}

	o.status = StatusPaid
	o.record(OrderPaidEvent{
		OrderID:   o.id,
		Total:     o.total,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Ship transitions PAID -> SHIPPED
func (o *Order) Ship() error {
	if o.status != StatusPaid {
		return NewInvalidTransition(o.status, "ship")
	}

	o.status = StatusShipped
	o.record(OrderShippedEvent{
		OrderID:   o.id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Deliver transitions SHIPPED -> DELIVERED
func (o *Order) Deliver() error {
	if o.status != StatusShipped {
		return NewInvalidTransition(o.status, "deliver")
	}

	o.status = StatusDelivered
	o.record(OrderDeliveredEvent{
		OrderID:   o.id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// Cancel is legal from CREATED, PLACED and PAID. Shipped, delivered
// and already cancelled orders cannot be cancelled.
func (o *Order) Cancel() error {
	switch o.status {
	case StatusShipped, StatusDelivered, StatusCancelled:
		return NewInvalidTransition(o.status, "cancel")
	}

	previous := o.status
	o.status = StatusCancelled
	o.record(OrderCancelledEvent{
		OrderID:        o.id,
		PreviousStatus: previous,
		Timestamp:      time.Now().UTC(),
	})
	return nil
}

// ID returns the order identifier
func (o *Order) ID() OrderID {
	return o.id
}

// CustomerID returns the owning customer
func (o *Order) CustomerID() CustomerID {
	return o.customerID
}

// Status returns the current lifecycle state
func (o *Order) Status() Status {
	return o.status
}

// ShippingAddress returns the delivery address
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// OrderDate returns when the order was created
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Total returns the sum of all item subtotals
func (o *Order) Total() Money {
	return o.total
}

// Currency returns the currency fixed at creation
func (o *Order) Currency() Currency {
	return o.total.Currency()
}

// Items returns a copy of the order lines in insertion order
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// Item looks up a line by product ID
func (o *Order) Item(productID ProductID) (OrderItem, bool) {
	if idx := o.itemIndex(productID); idx >= 0 {
		return o.items[idx], true
	}
	return OrderItem{}, false
}

// PendingEvents returns a copy of the events recorded since the last drain
func (o *Order) PendingEvents() []DomainEvent {
	events := make([]DomainEvent, len(o.events))
	copy(events, o.events)
	return events
}

// DrainEvents returns the pending events and clears them
func (o *Order) DrainEvents() []DomainEvent {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) itemIndex(productID ProductID) int {
	for i, item := range o.items {
		if item.productID == productID {
			return i
		}
	}
	return -1
}

// Items all share the order currency, enforced in AddItem, so the
// additions below cannot fail.
func (o *Order) recalculateTotal() {
	sum := Zero(o.total.Currency())
	for _, item := range o.items {
		sum, _ = sum.Add(item.Subtotal())
	}
	o.total = sum
}

func (o *Order) record(event DomainEvent) {
	o.events = append(o.events, event)
}
