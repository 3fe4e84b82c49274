// Package meal provides the application layer for custom meal assembly:
// incremental ingredient selection, finalize-time validation and substitute
// suggestion.
package meal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/diet"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/meal"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// Failure reason templates. Tests depend on the literal text.
const (
	reasonInvalidIngredient = "Invalid ingredient data provided."
	reasonEmptySelection    = "Cannot finalize a meal with no ingredients."

	reasonUnavailableFmt       = "%s is unavailable"
	reasonBecameUnavailableFmt = "%s became unavailable."
	reasonVeganConflictFmt     = "%s is not compatible with their \"Vegan\" preference or meal composition"
	reasonGeneralConflictFmt   = "%s is not compatible with customer preferences or allergies."
)

// ErrNilRequest is returned when a nil meal request is passed in.
var ErrNilRequest = errors.New("meal request cannot be nil")

// MealService implements the custom meal use cases.
type MealService struct {
	ingredients outbound.IngredientRepository
	customers   outbound.CustomerRepository
	logger      *zap.Logger
}

// NewMealService creates a new meal service.
func NewMealService(
	ingredients outbound.IngredientRepository,
	customers outbound.CustomerRepository,
	logger *zap.Logger,
) inbound.MealService {
	return &MealService{
		ingredients: ingredients,
		customers:   customers,
		logger:      logger.Named("meal-service"),
	}
}

// StartCustomMeal opens a fresh meal request for the customer.
func (s *MealService) StartCustomMeal(ctx context.Context, customerEmail, mealName string) (*meal.Request, error) {
	req, err := meal.NewRequest(customerEmail, mealName)
	if err != nil {
		s.logger.Warn("refusing to start custom meal",
			zap.String("customer_email", customerEmail),
			zap.String("meal_name", mealName),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("started custom meal",
		zap.String("customer_email", customerEmail),
		zap.String("meal_name", mealName),
	)
	return req, nil
}

// AddIngredient resolves the ingredient by exact name and appends a snapshot
// to the selection. No compatibility check happens here; an incompatible
// ingredient is only rejected at finalize time. A missing ingredient records
// a failure reason but leaves the request open for further adds.
func (s *MealService) AddIngredient(ctx context.Context, req *meal.Request, ingredientName string) (bool, error) {
	if req == nil {
		return false, ErrNilRequest
	}
	if strings.TrimSpace(ingredientName) == "" {
		if err := req.RecordFailure(reasonInvalidIngredient); err != nil {
			return false, err
		}
		return false, nil
	}

	ing, err := s.ingredients.FindByName(ctx, ingredientName)
	if errors.Is(err, ingredient.ErrNotFound) {
		if err := req.RecordFailure(fmt.Sprintf(reasonUnavailableFmt, ingredientName)); err != nil {
			return false, err
		}
		s.logger.Info("ingredient unavailable at selection",
			zap.String("ingredient", ingredientName),
			zap.String("customer_email", req.CustomerEmail()),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := req.AddItem(ing); err != nil {
		return false, err
	}
	return true, nil
}

// FinalizeCustomMeal re-resolves the customer's current dietary profile and
// every selected ingredient against the current catalog, then seals the
// request: unsuccessfully with the first violation found, or successfully
// with the recomputed total price and exactly one derived meal tag.
func (s *MealService) FinalizeCustomMeal(ctx context.Context, req *meal.Request) (*meal.Request, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if req.Sealed() {
		return req, meal.ErrAlreadySealed
	}

	items := req.Items()
	if len(items) == 0 {
		if err := req.SealFailure(reasonEmptySelection); err != nil {
			return nil, err
		}
		return req, nil
	}

	preferences, allergies, err := s.currentDietaryProfile(ctx, req.CustomerEmail())
	if err != nil {
		return nil, err
	}

	// Re-resolve every selection so vanished ingredients are caught and the
	// freshest catalog prices and tags are used.
	resolved := make([]*ingredient.Ingredient, 0, len(items))
	for _, item := range items {
		current, err := s.ingredients.FindByName(ctx, item.Name())
		if errors.Is(err, ingredient.ErrNotFound) {
			if err := req.SealFailure(fmt.Sprintf(reasonBecameUnavailableFmt, item.Name())); err != nil {
				return nil, err
			}
			return req, nil
		}
		if err != nil {
			return nil, err
		}

		switch diet.Check(current, preferences, allergies) {
		case diet.ViolationNone:
			resolved = append(resolved, current)
		case diet.ViolationVegan:
			if err := req.SealFailure(fmt.Sprintf(reasonVeganConflictFmt, current.Name())); err != nil {
				return nil, err
			}
			return req, nil
		default:
			if err := req.SealFailure(fmt.Sprintf(reasonGeneralConflictFmt, current.Name())); err != nil {
				return nil, err
			}
			return req, nil
		}
	}

	totalPrice := 0.0
	allVegan := true
	for _, ing := range resolved {
		totalPrice += ing.Price()
		if !ing.HasTag(diet.TagVegan) {
			allVegan = false
		}
	}

	mealTag := meal.TagNonVegan
	if allVegan {
		mealTag = meal.TagVegan
	}
	if err := req.SealSuccess(totalPrice, mealTag); err != nil {
		return nil, err
	}

	s.logger.Info("finalized custom meal",
		zap.String("customer_email", req.CustomerEmail()),
		zap.String("meal_name", req.MealName()),
		zap.Float64("total_price", totalPrice),
		zap.String("meal_tag", mealTag),
	)
	return req, nil
}

// currentDietaryProfile fetches the customer's preferences and allergies.
// An unknown customer simply has neither.
func (s *MealService) currentDietaryProfile(ctx context.Context, email string) ([]string, []string, error) {
	c, err := s.customers.FindByEmail(ctx, email)
	if errors.Is(err, customer.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return c.Preferences(), c.Allergies(), nil
}
