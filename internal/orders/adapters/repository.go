package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"go-shop/internal/orders/domain"
	apperrors "go-shop/pkg/errors"
)

// OrderModel is the GORM model for orders (persistence layer)
type OrderModel struct {
	ID              string          `gorm:"primaryKey;size:36"`
	CustomerID      string          `gorm:"index;not null;size:36"`
	Status          string          `gorm:"size:20;not null"`
	ShippingAddress string          `gorm:"not null"`
	Currency        string          `gorm:"size:3;not null"`
	Total           decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	OrderDate       time.Time       `gorm:"not null"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM model for order lines
type OrderItemModel struct {
	OrderID     string          `gorm:"primaryKey;size:36"`
	ProductID   string          `gorm:"primaryKey;size:36"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,3);not null"`
	Position    int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PostgresOrderRepository implements OrderRepository using PostgreSQL
type PostgresOrderRepository struct {
	db *gorm.DB
}

// NewPostgresOrderRepository creates a new PostgreSQL order repository
func NewPostgresOrderRepository(db *gorm.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Migrate runs auto-migration for the order models
func (r *PostgresOrderRepository) Migrate() error {
	return r.db.AutoMigrate(&OrderModel{}, &OrderItemModel{})
}

// Save upserts the order and replaces its lines in one transaction
func (r *PostgresOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	memento := order.Memento()
	model, items := toModel(memento, order.Total())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", model.ID).Delete(&OrderItemModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return apperrors.NewInternal("failed to save order", err)
	}
	return nil
}

// FindByID retrieves an order with its lines
func (r *PostgresOrderRepository) FindByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var model OrderModel
	result := r.db.WithContext(ctx).First(&model, "id = ?", id.String())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewOrderNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get order", result.Error)
	}

	items, err := r.loadItems(ctx, model.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(&model, items)
}

// FindByCustomer retrieves all orders for a customer, oldest first
func (r *PostgresOrderRepository) FindByCustomer(ctx context.Context, customerID domain.CustomerID) ([]*domain.Order, error) {
	var models []OrderModel
	result := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.String()).
		Order("order_date asc, id asc").
		Find(&models)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to get orders by customer", result.Error)
	}

	orders := make([]*domain.Order, 0, len(models))
	for i := range models {
		items, err := r.loadItems(ctx, models[i].ID)
		if err != nil {
			return nil, err
		}
		order, err := toDomain(&models[i], items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresOrderRepository) loadItems(ctx context.Context, orderID string) ([]OrderItemModel, error) {
	var items []OrderItemModel
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("position asc").
		Find(&items)
	if result.Error != nil {
		return nil, apperrors.NewInternal("failed to get order items", result.Error)
	}
	return items, nil
}

func toModel(m domain.OrderMemento, total domain.Money) (*OrderModel, []OrderItemModel) {
	model := &OrderModel{
		ID:              m.ID.String(),
		CustomerID:      m.CustomerID.String(),
		Status:          string(m.Status),
		ShippingAddress: m.ShippingAddress,
		Currency:        m.Currency.String(),
		Total:           total.Amount(),
		OrderDate:       m.OrderDate,
	}

	items := make([]OrderItemModel, len(m.Items))
	for i, item := range m.Items {
		items[i] = OrderItemModel{
			OrderID:     model.ID,
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Amount(),
			Position:    i,
		}
	}
	return model, items
}

func toDomain(model *OrderModel, itemModels []OrderItemModel) (*domain.Order, error) {
	currency, err := domain.ParseCurrency(model.Currency)
	if err != nil {
		return nil, apperrors.NewInternal("stored order has unknown currency", err)
	}

	items := make([]domain.OrderItemMemento, len(itemModels))
	for i, item := range itemModels {
		unitPrice, err := domain.NewMoney(item.UnitPrice, currency)
		if err != nil {
			return nil, apperrors.NewInternal("stored order item has invalid price", err)
		}
		items[i] = domain.OrderItemMemento{
			ProductID:   domain.ProductID(item.ProductID),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		}
	}

	return domain.RestoreOrder(domain.OrderMemento{
		ID:              domain.OrderID(model.ID),
		CustomerID:      domain.CustomerID(model.CustomerID),
		Status:          domain.Status(model.Status),
		ShippingAddress: model.ShippingAddress,
		OrderDate:       model.OrderDate,
		Currency:        currency,
		Items:           items,
	}), nil
}
