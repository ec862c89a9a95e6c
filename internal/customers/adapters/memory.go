package adapters

import (
	"context"
	"sync"

	"go-shop/internal/customers/domain"
)

// MemoryCustomerRepository is an in-memory customer store keyed by ID.
// Save is an upsert. Not durable beyond the process lifetime.
type MemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
}

// NewMemoryCustomerRepository creates an empty in-memory customer repository
func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{
		customers: make(map[string]domain.Customer),
	}
}

// Save upserts a customer by ID
func (r *MemoryCustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[customer.ID] = *customer
	return nil
}

// FindByID retrieves a customer, returning a not found error when absent
func (r *MemoryCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.customers[id]
	if !ok {
		return nil, domain.NewCustomerNotFound(id)
	}
	return &customer, nil
}

// FindByEmail retrieves a customer by email
func (r *MemoryCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, customer := range r.customers {
		if customer.Email == email {
			c := customer
			return &c, nil
		}
	}
	return nil, domain.NewCustomerNotFound(email)
}
