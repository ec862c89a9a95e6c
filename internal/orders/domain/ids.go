package domain

import (
	"strings"

	"github.com/google/uuid"
)

// OrderID identifies an order. Compared by value, immutable.
type OrderID string

// NewOrderID validates and wraps an order identifier
func NewOrderID(value string) (OrderID, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrOrderIDRequired
	}
	return OrderID(value), nil
}

// NextOrderID mints a fresh order identifier
func NextOrderID() OrderID {
	return OrderID(uuid.New().String())
}

func (id OrderID) String() string {
	return string(id)
}

// CustomerID identifies the customer an order belongs to
type CustomerID string

// NewCustomerID validates and wraps a customer identifier
func NewCustomerID(value string) (CustomerID, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrCustomerIDRequired
	}
	return CustomerID(value), nil
}

func (id CustomerID) String() string {
	return string(id)
}

// ProductID identifies a product line within an order
type ProductID string

// NewProductID validates and wraps a product identifier
func NewProductID(value string) (ProductID, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrProductIDRequired
	}
	return ProductID(value), nil
}

func (id ProductID) String() string {
	return string(id)
}
