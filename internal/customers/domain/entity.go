package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Customer represents the customer domain entity
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmailRegex is the pattern for validating emails
var EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate validates the customer entity
func (c *Customer) Validate() error {
	if c.ID == "" {
		return ErrIDRequired
	}
	if c.Name == "" {
		return ErrNameRequired
	}
	if len(c.Name) < 2 || len(c.Name) > 100 {
		return ErrNameLength
	}
	if c.Email == "" {
		return ErrEmailRequired
	}
	if !EmailRegex.MatchString(c.Email) {
		return ErrEmailInvalid
	}
	return nil
}

// NewCustomer creates a new customer with validation
func NewCustomer(name, email string) (*Customer, error) {
	customer := &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := customer.Validate(); err != nil {
		return nil, err
	}

	return customer, nil
}
