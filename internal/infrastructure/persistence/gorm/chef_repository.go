package gorm

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"gorm.io/gorm"
)

// ChefRepository implements the kitchen staff store using GORM.
type ChefRepository struct {
	db *gorm.DB
}

// NewChefRepository creates a new GORM-backed chef repository.
func NewChefRepository(db *gorm.DB) outbound.ChefRepository {
	return &ChefRepository{db: db}
}

// FindByName finds a chef by exact name.
func (r *ChefRepository) FindByName(ctx context.Context, name string) (*chef.Chef, error) {
	var model ChefModel
	result := r.db.WithContext(ctx).First(&model, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, chef.ErrNotFound
		}
		return nil, result.Error
	}
	return ModelToChef(&model)
}

// All returns every chef ordered by name.
func (r *ChefRepository) All(ctx context.Context) ([]*chef.Chef, error) {
	var models []ChefModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]*chef.Chef, 0, len(models))
	for i := range models {
		c, err := ModelToChef(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Save inserts or replaces a chef keyed by name.
func (r *ChefRepository) Save(ctx context.Context, c *chef.Chef) error {
	if c == nil {
		return chef.ErrBlankName
	}
	return r.db.WithContext(ctx).Save(ChefToModel(c)).Error
}
