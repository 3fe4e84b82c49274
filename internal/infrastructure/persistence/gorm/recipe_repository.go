package gorm

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe catalog using GORM.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM-backed recipe repository.
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindByName finds a recipe by exact name.
func (r *RecipeRepository) FindByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, recipe.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToRecipe(&model)
}

// All returns the full catalog ordered by name.
func (r *RecipeRepository) All(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		rec, err := ModelToRecipe(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Save inserts or replaces a recipe keyed by name.
func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	if rec == nil {
		return recipe.ErrBlankName
	}
	return r.db.WithContext(ctx).Save(RecipeToModel(rec)).Error
}
