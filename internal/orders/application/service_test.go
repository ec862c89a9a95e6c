package application

import (
	"context"
	"testing"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/logger"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	orders map[domain.OrderID]domain.OrderMemento
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[domain.OrderID]domain.OrderMemento),
	}
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	m.orders[order.ID()] = order.Memento()
	return nil
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	memento, ok := m.orders[id]
	if !ok {
		return nil, domain.NewOrderNotFound(id)
	}
	return domain.RestoreOrder(memento), nil
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.Order, error) {
	var result []*domain.Order
	for _, memento := range m.orders {
		if memento.CustomerID == customerID {
			result = append(result, domain.RestoreOrder(memento))
		}
	}
	return result, nil
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	events []domain.DomainEvent
}

func (m *MockEventPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	m.events = append(m.events, event)
	return nil
}

// MockCustomerDirectory is a mock implementation of CustomerDirectory
type MockCustomerDirectory struct {
	customers map[string]*ports.CustomerInfo
}

func NewMockCustomerDirectory() *MockCustomerDirectory {
	return &MockCustomerDirectory{
		customers: map[string]*ports.CustomerInfo{
			"c-1": {ID: "c-1", Name: "Ada Lovelace", Email: "ada@example.com"},
		},
	}
}

func (m *MockCustomerDirectory) FindCustomer(ctx context.Context, id string) (*ports.CustomerInfo, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, errors.NewNotFound("customer", id)
	}
	return customer, nil
}

func newTestUseCase() (*OrderUseCase, *MockOrderRepository, *MockEventPublisher) {
	repo := NewMockOrderRepository()
	publisher := &MockEventPublisher{}
	directory := NewMockCustomerDirectory()
	log := logger.New("test", "error")
	return NewOrderUseCase(repo, publisher, directory, log), repo, publisher
}

func testCreateInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerID:      "c-1",
		ShippingAddress: "221B Baker Street, London",
		Currency:        "USD",
		Items: []ItemInput{
			{ProductID: "P1", ProductName: "Laptop", Quantity: 1, UnitPrice: "1299.99"},
			{ProductID: "P2", ProductName: "Mouse", Quantity: 1, UnitPrice: "25.99"},
		},
	}
}

func TestCreateOrder_Success(t *testing.T) {
	// Arrange
	useCase, repo, _ := newTestUseCase()

	// Act
	order, err := useCase.CreateOrder(context.Background(), testCreateInput())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if order.Status() != domain.StatusCreated {
		t.Errorf("expected CREATED, got %s", order.Status())
	}
	if got := order.Total().AmountFixed(); got != "1325.98" {
		t.Errorf("expected total 1325.98, got %s", got)
	}
	if _, ok := repo.orders[order.ID()]; !ok {
		t.Error("order was not saved")
	}
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	input := testCreateInput()
	input.CustomerID = "c-404"

	if _, err := useCase.CreateOrder(context.Background(), input); !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateOrder_UnknownCurrency(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	input := testCreateInput()
	input.Currency = "XXX"

	if _, err := useCase.CreateOrder(context.Background(), input); !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPlace_PublishesExactlyOneEvent(t *testing.T) {
	useCase, _, publisher := newTestUseCase()
	ctx := context.Background()

	order, err := useCase.CreateOrder(ctx, testCreateInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	placed, err := useCase.Place(ctx, order.ID().String())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}

	if placed.Status() != domain.StatusPlaced {
		t.Errorf("expected PLACED, got %s", placed.Status())
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected exactly one published event, got %d", len(publisher.events))
	}
	event, ok := publisher.events[0].(domain.OrderPlacedEvent)
	if !ok {
		t.Fatalf("expected OrderPlacedEvent, got %T", publisher.events[0])
	}
	if event.Total.AmountFixed() != "1325.98" {
		t.Errorf("event total = %s, want 1325.98", event.Total.AmountFixed())
	}
}

func TestPlace_EmptyOrderFails(t *testing.T) {
	useCase, _, publisher := newTestUseCase()
	ctx := context.Background()

	input := testCreateInput()
	input.Items = nil
	order, err := useCase.CreateOrder(ctx, input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if _, err := useCase.Place(ctx, order.ID().String()); !errors.Is(err, errors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(publisher.events) != 0 {
		t.Errorf("expected no events, got %d", len(publisher.events))
	}
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	ctx := context.Background()

	input := testCreateInput()
	input.Items = []ItemInput{{ProductID: "P1", ProductName: "Laptop", Quantity: 1, UnitPrice: "1299.99"}}
	order, err := useCase.CreateOrder(ctx, input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	updated, err := useCase.AddItem(ctx, order.ID().String(), ItemInput{
		ProductID: "P1", ProductName: "Laptop", Quantity: 2, UnitPrice: "1299.99",
	})
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	items := updated.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(items))
	}
	if items[0].Quantity() != 3 {
		t.Errorf("expected quantity 3, got %d", items[0].Quantity())
	}
}

func TestFullLifecycle_CancelAfterDeliveryFails(t *testing.T) {
	useCase, _, publisher := newTestUseCase()
	ctx := context.Background()

	order, err := useCase.CreateOrder(ctx, testCreateInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	id := order.ID().String()

	for _, step := range []func(context.Context, string) (*domain.Order, error){
		useCase.Place, useCase.Pay, useCase.Ship, useCase.Deliver,
	} {
		if _, err := step(ctx, id); err != nil {
			t.Fatalf("transition failed: %v", err)
		}
	}

	if _, err := useCase.Cancel(ctx, id); !errors.Is(err, errors.CodeInvalidState) {
		t.Errorf("expected invalid state error, got %v", err)
	}
	// placed, paid, shipped, delivered
	if len(publisher.events) != 4 {
		t.Errorf("expected 4 published events, got %d", len(publisher.events))
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	useCase, _, _ := newTestUseCase()

	if _, err := useCase.GetOrder(context.Background(), "missing"); !errors.Is(err, errors.CodeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestListCustomerOrders(t *testing.T) {
	useCase, _, _ := newTestUseCase()
	ctx := context.Background()

	if _, err := useCase.CreateOrder(ctx, testCreateInput()); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if _, err := useCase.CreateOrder(ctx, testCreateInput()); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	orders, err := useCase.ListCustomerOrders(ctx, "c-1")
	if err != nil {
		t.Fatalf("ListCustomerOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("expected 2 orders, got %d", len(orders))
	}
}
