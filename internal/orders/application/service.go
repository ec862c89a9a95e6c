package application

import (
	"context"

	"go.uber.org/zap"

	"go-shop/internal/orders/domain"
	"go-shop/internal/orders/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/logger"
)

// OrderUseCase handles order business logic
type OrderUseCase struct {
	repo      ports.OrderRepository
	publisher ports.EventPublisher
	customers ports.CustomerDirectory
	log       *logger.Logger
}

// NewOrderUseCase creates a new order use case
func NewOrderUseCase(
	repo ports.OrderRepository,
	publisher ports.EventPublisher,
	customers ports.CustomerDirectory,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		publisher: publisher,
		customers: customers,
		log:       log,
	}
}

// ItemInput describes a product line to add to an order
type ItemInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   string
}

// CreateOrderInput is the input for creating an order
type CreateOrderInput struct {
	CustomerID      string
	ShippingAddress string
	Currency        string
	Items           []ItemInput
}

// CreateOrder creates a new order in status CREATED, optionally with
// initial items
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	customerID, err := domain.NewCustomerID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	currency, err := domain.ParseCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	// Validate the customer exists before opening an order for them
	if uc.customers != nil {
		if _, err := uc.customers.FindCustomer(ctx, input.CustomerID); err != nil {
			if errors.Is(err, errors.CodeNotFound) {
				return nil, errors.NewValidation("customer not found", map[string]interface{}{
					"customer_id": input.CustomerID,
				})
			}
			return nil, errors.Wrap(err, "failed to validate customer")
		}
	}

	order, err := domain.NewOrder(domain.NextOrderID(), customerID, input.ShippingAddress, currency)
	if err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		if err := uc.addItem(order, item); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Save(ctx, order); err != nil {
		return nil, errors.NewInternal("failed to save order", err)
	}

	uc.log.WithContext(ctx).Info("order created",
		zap.String("order_id", order.ID().String()),
		zap.String("customer_id", order.CustomerID().String()),
		zap.String("total", order.Total().String()),
	)

	return order, nil
}

// AddItem adds a product line to an order in status CREATED
func (uc *OrderUseCase) AddItem(ctx context.Context, orderID string, input ItemInput) (*domain.Order, error) {
	return uc.update(ctx, orderID, func(order *domain.Order) error {
		return uc.addItem(order, input)
	})
}

// RemoveItem removes a product line from an order in status CREATED
func (uc *OrderUseCase) RemoveItem(ctx context.Context, orderID, productID string) (*domain.Order, error) {
	return uc.update(ctx, orderID, func(order *domain.Order) error {
		pid, err := domain.NewProductID(productID)
		if err != nil {
			return err
		}
		return order.RemoveItem(pid)
	})
}

// UpdateItemQuantity replaces the quantity of an existing line
func (uc *OrderUseCase) UpdateItemQuantity(ctx context.Context, orderID, productID string, quantity int) (*domain.Order, error) {
	return uc.update(ctx, orderID, func(order *domain.Order) error {
		pid, err := domain.NewProductID(productID)
		if err != nil {
			return err
		}
		return order.UpdateItemQuantity(pid, quantity)
	})
}

// Place transitions an order to PLACED and publishes the order placed event
func (uc *OrderUseCase) Place(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, orderID, (*domain.Order).Place)
}

// Pay transitions an order to PAID
func (uc *OrderUseCase) Pay(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, orderID, (*domain.Order).Pay)
}

// Ship transitions an order to SHIPPED
func (uc *OrderUseCase) Ship(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, orderID, (*domain.Order).Ship)
}

// Deliver transitions an order to DELIVERED
func (uc *OrderUseCase) Deliver(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, orderID, (*domain.Order).Deliver)
}

// Cancel transitions an order to CANCELLED
func (uc *OrderUseCase) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.update(ctx, orderID, (*domain.Order).Cancel)
}

// GetOrder retrieves an order by ID
func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	id, err := domain.NewOrderID(orderID)
	if err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

// ListCustomerOrders retrieves all orders for a customer
func (uc *OrderUseCase) ListCustomerOrders(ctx context.Context, customerID string) ([]*domain.Order, error) {
	id, err := domain.NewCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	return uc.repo.FindByCustomer(ctx, id)
}

func (uc *OrderUseCase) addItem(order *domain.Order, input ItemInput) error {
	productID, err := domain.NewProductID(input.ProductID)
	if err != nil {
		return err
	}
	unitPrice, err := domain.NewMoneyFromString(input.UnitPrice, order.Currency())
	if err != nil {
		return err
	}
	return order.AddItem(productID, input.ProductName, input.Quantity, unitPrice)
}

// update loads the aggregate, applies the mutation, saves, then
// publishes any events the mutation recorded
func (uc *OrderUseCase) update(ctx context.Context, orderID string, apply func(*domain.Order) error) (*domain.Order, error) {
	id, err := domain.NewOrderID(orderID)
	if err != nil {
		return nil, err
	}

	order, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(order); err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, order); err != nil {
		return nil, errors.NewInternal("failed to save order", err)
	}

	uc.publishEvents(ctx, order)

	uc.log.WithContext(ctx).Info("order updated",
		zap.String("order_id", order.ID().String()),
		zap.String("status", string(order.Status())),
		zap.String("total", order.Total().String()),
	)

	return order, nil
}

// publishEvents drains pending events and publishes them. A publish
// failure is logged, never surfaced: the state change already happened.
func (uc *OrderUseCase) publishEvents(ctx context.Context, order *domain.Order) {
	if uc.publisher == nil {
		order.DrainEvents()
		return
	}

	for _, event := range order.DrainEvents() {
		if err := uc.publisher.Publish(ctx, event); err != nil {
			uc.log.WithContext(ctx).Error("failed to publish domain event",
				zap.Error(err),
				zap.String("event", event.EventName()),
				zap.String("order_id", order.ID().String()),
			)
		}
	}
}
