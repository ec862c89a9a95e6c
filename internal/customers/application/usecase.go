package application

import (
	"context"

	"go.uber.org/zap"

	"go-shop/internal/customers/domain"
	"go-shop/internal/customers/ports"
	"go-shop/pkg/errors"
	"go-shop/pkg/logger"
)

// CustomerUseCase handles customer business logic
type CustomerUseCase struct {
	repo ports.CustomerRepository
	log  *logger.Logger
}

// NewCustomerUseCase creates a new customer use case
func NewCustomerUseCase(repo ports.CustomerRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		repo: repo,
		log:  log,
	}
}

// RegisterCustomerInput is the input for registering a customer
type RegisterCustomerInput struct {
	Name  string
	Email string
}

// RegisterCustomer registers a new customer
func (uc *CustomerUseCase) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*domain.Customer, error) {
	customer, err := domain.NewCustomer(input.Name, input.Email)
	if err != nil {
		return nil, err
	}

	// Reject duplicate registrations by email
	if _, err := uc.repo.FindByEmail(ctx, customer.Email); err == nil {
		return nil, domain.NewEmailTaken(customer.Email)
	} else if !errors.Is(err, errors.CodeNotFound) {
		return nil, errors.Wrap(err, "failed to check email")
	}

	if err := uc.repo.Save(ctx, customer); err != nil {
		return nil, errors.NewInternal("failed to save customer", err)
	}

	uc.log.WithContext(ctx).Info("customer registered",
		zap.String("customer_id", customer.ID),
		zap.String("email", customer.Email),
	)

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (uc *CustomerUseCase) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return uc.repo.FindByID(ctx, id)
}
