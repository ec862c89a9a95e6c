package ports

import (
	"context"

	"go-shop/internal/customers/domain"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// Save upserts a customer by ID
	Save(ctx context.Context, customer *domain.Customer) error

	// FindByID retrieves a customer, returning a not found error when absent
	FindByID(ctx context.Context, id string) (*domain.Customer, error)

	// FindByEmail retrieves a customer by email, returning a not found
	// error when absent
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
}
