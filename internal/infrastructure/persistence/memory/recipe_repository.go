package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/ports/outbound"
)

// RecipeRepository implements the recipe catalog in memory.
type RecipeRepository struct {
	mu   sync.RWMutex
	data map[string]*recipe.Recipe
}

// NewRecipeRepository creates an empty in-memory recipe catalog.
func NewRecipeRepository() outbound.RecipeRepository {
	return &RecipeRepository{
		data: make(map[string]*recipe.Recipe),
	}
}

// FindByName looks up a recipe by exact name.
func (r *RecipeRepository) FindByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.data[name]
	if !ok {
		return nil, recipe.ErrNotFound
	}
	return rec, nil
}

// All returns the catalog sorted by recipe name.
func (r *RecipeRepository) All(ctx context.Context) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*recipe.Recipe, 0, len(r.data))
	for _, rec := range r.data {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

// Save inserts or replaces a recipe keyed by name.
func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	if rec == nil {
		return recipe.ErrBlankName
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[rec.Name()] = rec
	return nil
}
