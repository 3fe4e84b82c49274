package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/ports/outbound"
)

// CustomerRepository implements the dietary profile store in memory.
type CustomerRepository struct {
	mu   sync.RWMutex
	data map[string]*customer.Customer
}

// NewCustomerRepository creates an empty in-memory customer store.
func NewCustomerRepository() outbound.CustomerRepository {
	return &CustomerRepository{
		data: make(map[string]*customer.Customer),
	}
}

// FindByEmail looks up a profile by exact email.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.data[email]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

// All returns every profile sorted by email.
func (r *CustomerRepository) All(ctx context.Context) ([]*customer.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*customer.Customer, 0, len(r.data))
	for _, c := range r.data {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email() < out[j].Email() })
	return out, nil
}

// Save inserts or replaces a profile keyed by email.
func (r *CustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return customer.ErrBlankEmail
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[c.Email()] = c
	return nil
}
