package gorm

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// IngredientRepository implements the ingredient catalog using GORM.
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new GORM-backed ingredient repository.
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// FindByName finds an ingredient by exact name.
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error) {
	var model IngredientModel
	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ingredient.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToIngredient(&model)
}

// All returns the full catalog ordered by name.
func (r *IngredientRepository) All(ctx context.Context) ([]*ingredient.Ingredient, error) {
	var models []IngredientModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]*ingredient.Ingredient, 0, len(models))
	for i := range models {
		ing, err := ModelToIngredient(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ing)
	}
	return out, nil
}

// Save inserts or replaces an ingredient keyed by name.
func (r *IngredientRepository) Save(ctx context.Context, ing *ingredient.Ingredient) error {
	if ing == nil {
		return ingredient.ErrBlankName
	}
	return r.db.WithContext(ctx).Save(IngredientToModel(ing)).Error
}

// Delete removes an ingredient from the catalog.
func (r *IngredientRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Delete(&IngredientModel{}, "name = ?", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ingredient.ErrNotFound
	}
	return nil
}
