package ports

import (
	"context"

	"go-shop/internal/orders/domain"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Save upserts an order by its ID
	Save(ctx context.Context, order *domain.Order) error

	// FindByID retrieves an order, returning a not found error when absent
	FindByID(ctx context.Context, id domain.OrderID) (*domain.Order, error)

	// FindByCustomer retrieves all orders for a customer
	FindByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.Order, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event domain.DomainEvent) error
}

// CustomerDirectory checks that a customer exists before an order is
// created for them
type CustomerDirectory interface {
	FindCustomer(ctx context.Context, id string) (*CustomerInfo, error)
}

// CustomerInfo is the directory's view of a customer
type CustomerInfo struct {
	ID    string
	Name  string
	Email string
}
