package adapters

import (
	"context"

	custapp "go-shop/internal/customers/application"
	"go-shop/internal/orders/ports"
)

// CustomerLookup resolves customers through the customers use case,
// in-process. Implements the CustomerDirectory port.
type CustomerLookup struct {
	customers *custapp.CustomerUseCase
}

// NewCustomerLookup creates a new in-process customer directory
func NewCustomerLookup(customers *custapp.CustomerUseCase) *CustomerLookup {
	return &CustomerLookup{customers: customers}
}

// FindCustomer retrieves a customer by ID
func (l *CustomerLookup) FindCustomer(ctx context.Context, id string) (*ports.CustomerInfo, error) {
	customer, err := l.customers.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.CustomerInfo{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	}, nil
}
