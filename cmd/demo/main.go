// Command demo walks an order through its whole lifecycle against
// in-memory wiring: register a customer, build an order, place it, pay,
// ship, deliver, then show that a delivered order cannot be cancelled.
package main

import (
	"context"

	"go.uber.org/zap"

	custadapters "go-shop/internal/customers/adapters"
	custapp "go-shop/internal/customers/application"
	orderadapters "go-shop/internal/orders/adapters"
	orderapp "go-shop/internal/orders/application"
	"go-shop/internal/orders/domain"
	"go-shop/pkg/eventbus"
	"go-shop/pkg/logger"
)

func main() {
	log := logger.New("order-demo", "info")
	defer log.Sync()

	bus := eventbus.New(log)
	bus.Subscribe(domain.EventOrderPlaced, func(ctx context.Context, event eventbus.Event) error {
		placed := event.(domain.OrderPlacedEvent)
		log.Info("order placed notification",
			zap.String("order_id", placed.OrderID.String()),
			zap.String("customer_id", placed.CustomerID.String()),
			zap.String("total", placed.Total.String()),
			zap.Time("timestamp", placed.Timestamp),
		)
		return nil
	})

	customers := custapp.NewCustomerUseCase(custadapters.NewMemoryCustomerRepository(), log)
	orders := orderapp.NewOrderUseCase(
		orderadapters.NewMemoryOrderRepository(),
		orderadapters.NewBusPublisher(bus),
		orderadapters.NewCustomerLookup(customers),
		log,
	)

	ctx := context.Background()

	customer, err := customers.RegisterCustomer(ctx, custapp.RegisterCustomerInput{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
	})
	if err != nil {
		log.Fatal("register customer: " + err.Error())
	}

	order, err := orders.CreateOrder(ctx, orderapp.CreateOrderInput{
		CustomerID:      customer.ID,
		ShippingAddress: "12 Analytical Engine Way, London",
		Currency:        "USD",
		Items: []orderapp.ItemInput{
			{ProductID: "P1", ProductName: "Laptop", Quantity: 1, UnitPrice: "1299.99"},
			{ProductID: "P2", ProductName: "Mouse", Quantity: 1, UnitPrice: "25.99"},
		},
	})
	if err != nil {
		log.Fatal("create order: " + err.Error())
	}

	id := order.ID().String()

	for _, step := range []struct {
		name  string
		apply func(context.Context, string) (*domain.Order, error)
	}{
		{"place", orders.Place},
		{"pay", orders.Pay},
		{"ship", orders.Ship},
		{"deliver", orders.Deliver},
	} {
		order, err = step.apply(ctx, id)
		if err != nil {
			log.Fatal(step.name + ": " + err.Error())
		}
		log.Info("transition applied",
			zap.String("step", step.name),
			zap.String("status", string(order.Status())),
			zap.String("total", order.Total().String()),
		)
	}

	// A delivered order is terminal: cancelling must fail
	if _, err := orders.Cancel(ctx, id); err != nil {
		log.Info("cancel rejected as expected", zap.String("reason", err.Error()))
	} else {
		log.Fatal("cancel of a delivered order unexpectedly succeeded")
	}
}
