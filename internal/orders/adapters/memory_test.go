package adapters

import (
	"context"
	"testing"
	"time"

	"go-shop/internal/orders/domain"
	apperrors "go-shop/pkg/errors"
)

func newStoredOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(domain.NextOrderID(), "c-1", "221B Baker Street, London", domain.CurrencyUSD)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	price, err := domain.NewMoneyFromString("25.99", domain.CurrencyUSD)
	if err != nil {
		t.Fatalf("NewMoneyFromString: %v", err)
	}
	if err := order.AddItem("P1", "Mouse", 1, price); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	return order
}

func TestMemoryRepository_SaveAndFind(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	order := newStoredOrder(t)

	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save: %v", err)
	}

	found, err := repo.FindByID(ctx, order.ID())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.ID() != order.ID() {
		t.Error("identity lost in store round trip")
	}
	if !found.Total().Equal(order.Total()) {
		t.Errorf("total %s != %s", found.Total(), order.Total())
	}
}

func TestMemoryRepository_SaveIsUpsert(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	order := newStoredOrder(t)

	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := order.Place(); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	found, err := repo.FindByID(ctx, order.ID())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Status() != domain.StatusPlaced {
		t.Errorf("expected PLACED after upsert, got %s", found.Status())
	}
}

func TestMemoryRepository_FindReturnsIsolatedCopy(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	order := newStoredOrder(t)

	if err := repo.Save(ctx, order); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := repo.FindByID(ctx, order.ID())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	// Mutating a loaded aggregate must not leak into the store
	if err := loaded.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	fresh, err := repo.FindByID(ctx, order.ID())
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if fresh.Status() != domain.StatusCreated {
		t.Errorf("store leaked mutable state: status = %s", fresh.Status())
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	if _, err := repo.FindByID(context.Background(), "missing"); !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestMemoryRepository_FindByCustomer(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()

	first := newStoredOrder(t)
	second := newStoredOrder(t)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatal(err)
	}

	orders, err := repo.FindByCustomer(ctx, "c-1")
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("expected 2 orders, got %d", len(orders))
	}

	none, err := repo.FindByCustomer(ctx, "c-2")
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no orders for other customer, got %d", len(none))
	}
}

func TestMemoryRepository_FindByCustomerOrdersByDate(t *testing.T) {
	repo := NewMemoryOrderRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Saved newest first to rule out insertion-order luck
	for i := 3; i >= 1; i-- {
		memento := domain.OrderMemento{
			ID:              domain.OrderID("o-" + string(rune('0'+i))),
			CustomerID:      "c-1",
			Status:          domain.StatusCreated,
			ShippingAddress: "221B Baker Street, London",
			OrderDate:       base.Add(time.Duration(i) * time.Hour),
			Currency:        domain.CurrencyUSD,
		}
		if err := repo.Save(ctx, domain.RestoreOrder(memento)); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	orders, err := repo.FindByCustomer(ctx, "c-1")
	if err != nil {
		t.Fatalf("FindByCustomer: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []domain.OrderID{"o-1", "o-2", "o-3"} {
		if orders[i].ID() != want {
			t.Errorf("orders[%d] = %s, want %s", i, orders[i].ID(), want)
		}
	}
}
