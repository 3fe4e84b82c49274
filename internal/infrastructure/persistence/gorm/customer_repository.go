package gorm

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// CustomerRepository implements the dietary profile store using GORM.
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new GORM-backed customer repository.
func NewCustomerRepository(db *gorm.DB) outbound.CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindByEmail finds a profile by exact email.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var model CustomerModel
	result := r.db.WithContext(ctx).First(&model, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToCustomer(&model)
}

// All returns every profile ordered by email.
func (r *CustomerRepository) All(ctx context.Context) ([]*customer.Customer, error) {
	var models []CustomerModel
	result := r.db.WithContext(ctx).Order("email").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]*customer.Customer, 0, len(models))
	for i := range models {
		c, err := ModelToCustomer(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Save inserts or replaces a profile keyed by email.
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return customer.ErrBlankEmail
	}
	return r.db.WithContext(ctx).Save(CustomerToModel(c)).Error
}
