// Package memory provides in-memory repository implementations backed by
// mutex-guarded maps. They serve tests, the demo seed data and small
// single-node deployments.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/ports/outbound"
)

// IngredientRepository implements the ingredient catalog in memory.
type IngredientRepository struct {
	mu   sync.RWMutex
	data map[string]*ingredient.Ingredient
}

// NewIngredientRepository creates an empty in-memory ingredient catalog.
func NewIngredientRepository() outbound.IngredientRepository {
	return &IngredientRepository{
		data: make(map[string]*ingredient.Ingredient),
	}
}

// FindByName looks up an ingredient by exact name.
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.data[name]
	if !ok {
		return nil, ingredient.ErrNotFound
	}
	return ing, nil
}

// All returns the catalog sorted by ingredient name.
func (r *IngredientRepository) All(ctx context.Context) ([]*ingredient.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*ingredient.Ingredient, 0, len(r.data))
	for _, ing := range r.data {
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Save inserts or replaces an ingredient keyed by name.
func (r *IngredientRepository) Save(ctx context.Context, ing *ingredient.Ingredient) error {
	if ing == nil {
		return ingredient.ErrBlankName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[ing.Name()] = ing
	return nil
}

// Delete removes an ingredient from the catalog.
func (r *IngredientRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[name]; !ok {
		return ingredient.ErrNotFound
	}
	delete(r.data, name)
	return nil
}
