package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/ports/outbound"
)

// OrderRepository implements the order history store in memory.
type OrderRepository struct {
	mu   sync.RWMutex
	data map[string]*order.Order
}

// NewOrderRepository creates an empty in-memory order store.
func NewOrderRepository() outbound.OrderRepository {
	return &OrderRepository{
		data: make(map[string]*order.Order),
	}
}

// FindByID looks up an order by ID.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.data[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o, nil
}

// FindByCustomerEmail returns the customer's orders sorted by ID.
func (r *OrderRepository) FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*order.Order{}
	for _, o := range r.data {
		if o.CustomerEmail() == email {
			out = append(out, o)
		}
	}
	sortByID(out)
	return out, nil
}

// FindByDate returns the orders dated on the given calendar day, sorted by ID.
func (r *OrderRepository) FindByDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	y, m, d := date.Date()
	out := []*order.Order{}
	for _, o := range r.data {
		oy, om, od := o.Date().Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	sortByID(out)
	return out, nil
}

// All returns every order sorted by ID.
func (r *OrderRepository) All(ctx context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*order.Order, 0, len(r.data))
	for _, o := range r.data {
		out = append(out, o)
	}
	sortByID(out)
	return out, nil
}

// Save inserts or replaces an order keyed by ID.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if o == nil {
		return order.ErrBlankIdentifier
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[o.ID()] = o
	return nil
}

func sortByID(orders []*order.Order) {
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID() < orders[j].ID() })
}
