package domain

import (
	"fmt"

	"go-shop/pkg/errors"
)

// Domain-specific errors
var (
	ErrOrderIDRequired         = errors.NewValidation("order id cannot be empty", nil)
	ErrCustomerIDRequired      = errors.NewValidation("customer id cannot be empty", nil)
	ErrProductIDRequired       = errors.NewValidation("product id cannot be empty", nil)
	ErrProductNameRequired     = errors.NewValidation("product name cannot be empty", nil)
	ErrShippingAddressRequired = errors.NewValidation("shipping address cannot be empty", nil)
	ErrQuantityNotPositive     = errors.NewValidation("quantity must be positive", nil)
	ErrUnitPriceNotPositive    = errors.NewValidation("unit price must be positive", nil)
	ErrEmptyOrder              = errors.NewValidation("order must have at least one item", nil)
	ErrUnknownCurrency         = errors.NewValidation("unknown currency code", nil)
	ErrInvalidAmount           = errors.NewValidation("amount is not a valid decimal", nil)
	ErrCurrencyMismatch        = errors.NewValidation("money operations require matching currencies", nil)
	ErrDivisionByZero          = errors.NewValidation("cannot divide money by zero", nil)
)

// NewOrderNotFound creates a not found error with the order ID
func NewOrderNotFound(id OrderID) error {
	return errors.NewNotFound("order", id.String())
}

// NewItemNotFound creates a not found error for an order line
func NewItemNotFound(id ProductID) error {
	return errors.NewNotFound("order item", id.String())
}

// NewInvalidTransition creates an invalid state error naming the current
// status and the attempted operation
func NewInvalidTransition(current Status, operation string) error {
	return errors.NewInvalidState(
		fmt.Sprintf("operation %q is not allowed in status %s", operation, current),
		map[string]interface{}{
			"status":    string(current),
			"operation": operation,
		},
	)
}
