package domain

import "go-shop/pkg/errors"

// Domain-specific errors
var (
	ErrIDRequired    = errors.NewValidation("customer id is required", nil)
	ErrNameRequired  = errors.NewValidation("name is required", nil)
	ErrNameLength    = errors.NewValidation("name must be between 2 and 100 characters", nil)
	ErrEmailRequired = errors.NewValidation("email is required", nil)
	ErrEmailInvalid  = errors.NewValidation("email format is invalid", nil)
)

// NewCustomerNotFound creates a not found error with the customer ID
func NewCustomerNotFound(id string) error {
	return errors.NewNotFound("customer", id)
}

// NewEmailTaken creates a conflict error for a duplicate email
func NewEmailTaken(email string) error {
	return errors.NewConflict("email '" + email + "' is already registered")
}
