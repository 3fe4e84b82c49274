// Package inventory provides the application layer for ingredient stock
// tracking.
package inventory

import (
	"context"
	"errors"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// InventoryService implements stock tracking over the ingredient catalog.
type InventoryService struct {
	ingredients outbound.IngredientRepository
	logger      *zap.Logger
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(ingredients outbound.IngredientRepository, logger *zap.Logger) inbound.InventoryService {
	return &InventoryService{
		ingredients: ingredients,
		logger:      logger.Named("inventory-service"),
	}
}

// Stock returns the catalog entry for the ingredient, including its stock
// level.
func (s *InventoryService) Stock(ctx context.Context, ingredientName string) (*ingredient.Ingredient, error) {
	return s.ingredients.FindByName(ctx, ingredientName)
}

// AllStockLevels returns the full catalog.
func (s *InventoryService) AllStockLevels(ctx context.Context) ([]*ingredient.Ingredient, error) {
	return s.ingredients.All(ctx)
}

// UseIngredients consumes stock for a whole meal at once. The check pass
// runs before any decrement so a short or missing ingredient leaves the
// inventory untouched.
func (s *InventoryService) UseIngredients(ctx context.Context, quantities map[string]int) (bool, error) {
	resolved := make(map[string]*ingredient.Ingredient, len(quantities))
	for name, qty := range quantities {
		if qty <= 0 {
			continue
		}
		ing, err := s.ingredients.FindByName(ctx, name)
		if errors.Is(err, ingredient.ErrNotFound) {
			s.logger.Warn("cannot use unknown ingredient", zap.String("ingredient", name))
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if ing.Stock() < qty {
			s.logger.Warn("insufficient stock",
				zap.String("ingredient", name),
				zap.Int("requested", qty),
				zap.Int("available", ing.Stock()),
			)
			return false, nil
		}
		resolved[name] = ing
	}

	for name, ing := range resolved {
		ing.DecreaseStock(quantities[name])
		if err := s.ingredients.Save(ctx, ing); err != nil {
			return false, err
		}
	}
	return true, nil
}

// UseSingle consumes stock for one ingredient.
func (s *InventoryService) UseSingle(ctx context.Context, ingredientName string, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, nil
	}
	return s.UseIngredients(ctx, map[string]int{ingredientName: quantity})
}

// NeedingRestock lists every ingredient whose stock has fallen below its
// reorder level.
func (s *InventoryService) NeedingRestock(ctx context.Context) ([]*ingredient.Ingredient, error) {
	all, err := s.ingredients.All(ctx)
	if err != nil {
		return nil, err
	}
	low := []*ingredient.Ingredient{}
	for _, ing := range all {
		if ing.NeedsRestocking() {
			low = append(low, ing)
		}
	}
	return low, nil
}

// SetStock replaces the stock level for an ingredient.
func (s *InventoryService) SetStock(ctx context.Context, ingredientName string, level int) error {
	ing, err := s.ingredients.FindByName(ctx, ingredientName)
	if err != nil {
		return err
	}
	ing.SetStock(level)
	return s.ingredients.Save(ctx, ing)
}

// SetReorderLevel replaces the restocking threshold for an ingredient.
func (s *InventoryService) SetReorderLevel(ctx context.Context, ingredientName string, level int) error {
	ing, err := s.ingredients.FindByName(ctx, ingredientName)
	if err != nil {
		return err
	}
	ing.SetReorderLevel(level)
	return s.ingredients.Save(ctx, ing)
}
