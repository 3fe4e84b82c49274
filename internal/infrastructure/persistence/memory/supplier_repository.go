package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/healthyplate/v1/internal/domain/supplier"
	"github.com/healthyplate/v1/internal/ports/outbound"
)

// SupplierRepository implements the vendor store and the ingredient-supplier
// link table in memory.
type SupplierRepository struct {
	mu    sync.RWMutex
	data  map[string]*supplier.Supplier
	links map[string]supplier.Link
}

// NewSupplierRepository creates an empty in-memory supplier store.
func NewSupplierRepository() outbound.SupplierRepository {
	return &SupplierRepository{
		data:  make(map[string]*supplier.Supplier),
		links: make(map[string]supplier.Link),
	}
}

// FindByID looks up a supplier by ID.
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.data[id]
	if !ok {
		return nil, supplier.ErrNotFound
	}
	return s, nil
}

// FindByName looks up a supplier by display name.
func (r *SupplierRepository) FindByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.data {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, supplier.ErrNotFound
}

// All returns every supplier sorted by ID.
func (r *SupplierRepository) All(ctx context.Context) ([]*supplier.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*supplier.Supplier, 0, len(r.data))
	for _, s := range r.data {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Save inserts or replaces a supplier keyed by ID.
func (r *SupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	if s == nil {
		return supplier.ErrBlankIdentifier
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[s.ID()] = s
	return nil
}

// LinkFor returns the reorder link for the ingredient, if any.
func (r *SupplierRepository) LinkFor(ctx context.Context, ingredientName string) (supplier.Link, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, ok := r.links[ingredientName]
	if !ok {
		return supplier.Link{}, supplier.ErrNoLink
	}
	return link, nil
}

// SaveLink inserts or replaces a reorder link keyed by ingredient name.
func (r *SupplierRepository) SaveLink(ctx context.Context, link supplier.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.links[link.IngredientName] = link
	return nil
}
