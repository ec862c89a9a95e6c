package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"go-shop/internal/customers/domain"
	apperrors "go-shop/pkg/errors"
)

// CustomerModel is the GORM model for customers (persistence layer)
type CustomerModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"size:100;not null"`
	Email     string    `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// PostgresCustomerRepository implements CustomerRepository using PostgreSQL
type PostgresCustomerRepository struct {
	db *gorm.DB
}

// NewPostgresCustomerRepository creates a new PostgreSQL customer repository
func NewPostgresCustomerRepository(db *gorm.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

// Migrate runs auto-migration for the customer model
func (r *PostgresCustomerRepository) Migrate() error {
	return r.db.AutoMigrate(&CustomerModel{})
}

// Save upserts a customer by ID
func (r *PostgresCustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	model := toModel(customer)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return apperrors.NewInternal("failed to save customer", result.Error)
	}

	customer.CreatedAt = model.CreatedAt
	customer.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID retrieves a customer by ID
func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	var model CustomerModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewCustomerNotFound(id)
		}
		return nil, apperrors.NewInternal("failed to get customer", result.Error)
	}

	return toDomain(&model), nil
}

// FindByEmail retrieves a customer by email
func (r *PostgresCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var model CustomerModel

	result := r.db.WithContext(ctx).First(&model, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.NewCustomerNotFound(email)
		}
		return nil, apperrors.NewInternal("failed to get customer", result.Error)
	}

	return toDomain(&model), nil
}

// toModel converts a domain entity to a GORM model
func toModel(customer *domain.Customer) *CustomerModel {
	return &CustomerModel{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// toDomain converts a GORM model to a domain entity
func toDomain(model *CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
