package domain

import "time"

// OrderMemento is the repository-only rebuild path for the aggregate.
// Fields on Order are unexported, so persistence adapters snapshot and
// restore through this type instead of setters. The total is not part
// of the memento: RestoreOrder recomputes it from the items.
type OrderMemento struct {
	ID              OrderID
	CustomerID      CustomerID
	Status          Status
	ShippingAddress string
	OrderDate       time.Time
	Currency        Currency
	Items           []OrderItemMemento
}

// OrderItemMemento is the stored form of a single order line
type OrderItemMemento struct {
	ProductID   ProductID
	ProductName string
	Quantity    int
	UnitPrice   Money
}

// Memento snapshots the aggregate for persistence
func (o *Order) Memento() OrderMemento {
	items := make([]OrderItemMemento, len(o.items))
	for i, item := range o.items {
		items[i] = OrderItemMemento{
			ProductID:   item.productID,
			ProductName: item.productName,
			Quantity:    item.quantity,
			UnitPrice:   item.unitPrice,
		}
	}

	return OrderMemento{
		ID:              o.id,
		CustomerID:      o.customerID,
		Status:          o.status,
		ShippingAddress: o.shippingAddress,
		OrderDate:       o.orderDate,
		Currency:        o.total.Currency(),
		Items:           items,
	}
}

// RestoreOrder rebuilds an aggregate from a memento with no pending
// events. For repository use only.
func RestoreOrder(m OrderMemento) *Order {
	items := make([]OrderItem, len(m.Items))
	for i, im := range m.Items {
		items[i] = OrderItem{
			productID:   im.ProductID,
			productName: im.ProductName,
			quantity:    im.Quantity,
			unitPrice:   im.UnitPrice,
		}
	}

	order := &Order{
		id:              m.ID,
		customerID:      m.CustomerID,
		items:           items,
		status:          m.Status,
		shippingAddress: m.ShippingAddress,
		orderDate:       m.OrderDate,
		total:           Zero(m.Currency),
	}
	order.recalculateTotal()
	return order
}
