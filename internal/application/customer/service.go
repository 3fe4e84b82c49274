// Package customer provides the application layer for dietary profiles.
package customer

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// CustomerService implements profile management. Customers are registered
// implicitly the first time their email is referenced.
type CustomerService struct {
	customers outbound.CustomerRepository
	logger    *zap.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customers outbound.CustomerRepository, logger *zap.Logger) inbound.CustomerService {
	return &CustomerService{
		customers: customers,
		logger:    logger.Named("customer-service"),
	}
}

// RegisterOrGet returns the profile for the email, creating an empty one on
// first reference.
func (s *CustomerService) RegisterOrGet(ctx context.Context, email string) (*customer.Customer, error) {
	c, err := s.customers.FindByEmail(ctx, email)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, customer.ErrNotFound) {
		return nil, err
	}

	c, err = customer.New(email)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("registered customer", zap.String("email", c.Email()))
	return c, nil
}

// AddPreference records a dietary preference on the profile.
func (s *CustomerService) AddPreference(ctx context.Context, email, preference string) error {
	c, err := s.RegisterOrGet(ctx, email)
	if err != nil {
		return err
	}
	c.AddPreference(preference)
	return s.customers.Save(ctx, c)
}

// AddAllergy records an allergy on the profile.
func (s *CustomerService) AddAllergy(ctx context.Context, email, allergy string) error {
	c, err := s.RegisterOrGet(ctx, email)
	if err != nil {
		return err
	}
	c.AddAllergy(allergy)
	return s.customers.Save(ctx, c)
}

// DietaryInfo returns the profile without creating it. An unknown email
// yields customer.ErrNotFound.
func (s *CustomerService) DietaryInfo(ctx context.Context, email string) (*customer.Customer, error) {
	return s.customers.FindByEmail(ctx, email)
}
