package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrderItem is an entity owned by the Order aggregate. Its identity
// within the aggregate is the product ID: one line per product.
type OrderItem struct {
	productID   ProductID
	productName string
	quantity    int
	unitPrice   Money
}

func newOrderItem(productID ProductID, productName string, quantity int, unitPrice Money) (OrderItem, error) {
	if productID == "" {
		return OrderItem{}, ErrProductIDRequired
	}
	if strings.TrimSpace(productName) == "" {
		return OrderItem{}, ErrProductNameRequired
	}
	if quantity <= 0 {
		return OrderItem{}, ErrQuantityNotPositive
	}
	if !unitPrice.IsPositive() {
		return OrderItem{}, ErrUnitPriceNotPositive
	}

	return OrderItem{
		productID:   productID,
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ProductID returns the product identifier
func (i OrderItem) ProductID() ProductID {
	return i.productID
}

// ProductName returns the product name
func (i OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity
func (i OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit
func (i OrderItem) UnitPrice() Money {
	return i.unitPrice
}

// Subtotal is unit price times quantity, recomputed on read
func (i OrderItem) Subtotal() Money {
	return i.unitPrice.Multiply(decimal.NewFromInt(int64(i.quantity)))
}

func (i OrderItem) withQuantity(quantity int) OrderItem {
	i.quantity = quantity
	return i
}
