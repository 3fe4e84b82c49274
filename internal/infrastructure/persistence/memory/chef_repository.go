package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/ports/outbound"
)

// ChefRepository implements the kitchen staff store in memory.
type ChefRepository struct {
	mu   sync.RWMutex
	data map[string]*chef.Chef
}

// NewChefRepository creates an empty in-memory chef store.
func NewChefRepository() outbound.ChefRepository {
	return &ChefRepository{
		data: make(map[string]*chef.Chef),
	}
}

// FindByName looks up a chef by exact name.
func (r *ChefRepository) FindByName(ctx context.Context, name string) (*chef.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.data[name]
	if !ok {
		return nil, chef.ErrNotFound
	}
	return c, nil
}

// All returns every chef sorted by name.
func (r *ChefRepository) All(ctx context.Context) ([]*chef.Chef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*chef.Chef, 0, len(r.data))
	for _, c := range r.data {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Save inserts or replaces a chef keyed by name.
func (r *ChefRepository) Save(ctx context.Context, c *chef.Chef) error {
	if c == nil {
		return chef.ErrBlankName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[c.Name()] = c
	return nil
}
