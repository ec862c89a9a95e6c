package adapters

import (
	"context"
	"sort"
	"sync"

	"go-shop/internal/orders/domain"
)

// MemoryOrderRepository is a collection-like in-memory store keyed by
// order ID. Save is an upsert. Orders are stored as mementos so callers
// never share mutable aggregate state with the store. Not durable:
// contents live only for the process lifetime.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[domain.OrderID]domain.OrderMemento
}

// NewMemoryOrderRepository creates an empty in-memory order repository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[domain.OrderID]domain.OrderMemento),
	}
}

// Save upserts an order by its ID
func (r *MemoryOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID()] = order.Memento()
	return nil
}

// FindByID retrieves an order, returning a not found error when absent
func (r *MemoryOrderRepository) FindByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memento, ok := r.orders[id]
	if !ok {
		return nil, domain.NewOrderNotFound(id)
	}
	return domain.RestoreOrder(memento), nil
}

// FindByCustomer retrieves all orders for a customer, oldest first.
// Map iteration is random, so the result is sorted to match what the
// database-backed repository returns.
func (r *MemoryOrderRepository) FindByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Order
	for _, memento := range r.orders {
		if memento.CustomerID == customerID {
			result = append(result, domain.RestoreOrder(memento))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].OrderDate().Equal(result[j].OrderDate()) {
			return result[i].OrderDate().Before(result[j].OrderDate())
		}
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}
