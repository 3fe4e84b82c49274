package meal

import (
	"context"
	"errors"
	"strings"

	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/diet"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"go.uber.org/zap"
)

// SuggestAlternatives scans the catalog for substitutes for the named
// ingredient that the customer can actually eat. A candidate qualifies when
// the original explicitly lists it as an alternative, or when a dietary
// heuristic pairs it with the original (vegan swap for a non-vegan original,
// or an approved low-carb exemplar for a keto-conflicting original). Any
// precondition failure yields an empty list; callers must not depend on the
// output order.
func (s *MealService) SuggestAlternatives(ctx context.Context, originalIngredientName, customerEmail string) ([]*ingredient.Ingredient, error) {
	suggestions := []*ingredient.Ingredient{}
	if strings.TrimSpace(originalIngredientName) == "" || strings.TrimSpace(customerEmail) == "" {
		return suggestions, nil
	}

	original, err := s.ingredients.FindByName(ctx, originalIngredientName)
	if errors.Is(err, ingredient.ErrNotFound) {
		return suggestions, nil
	}
	if err != nil {
		return nil, err
	}

	cust, err := s.customers.FindByEmail(ctx, customerEmail)
	if errors.Is(err, customer.ErrNotFound) {
		return suggestions, nil
	}
	if err != nil {
		return nil, err
	}

	preferences := cust.Preferences()
	allergies := cust.Allergies()

	catalog, err := s.ingredients.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, candidate := range catalog {
		if candidate.Name() == originalIngredientName {
			continue
		}
		if !diet.Compatible(candidate, preferences, allergies) {
			continue
		}
		if !s.qualifiesAsAlternative(original, candidate, cust) {
			continue
		}
		if _, dup := seen[candidate.Name()]; dup {
			continue
		}
		seen[candidate.Name()] = struct{}{}
		suggestions = append(suggestions, candidate)
	}

	s.logger.Debug("suggested alternatives",
		zap.String("original", originalIngredientName),
		zap.Int("count", len(suggestions)),
	)
	return suggestions, nil
}

// qualifiesAsAlternative applies the suggestion rules in order: the
// data-driven alternatives list is authoritative, then the vegan and keto
// heuristics apply for type-similar candidates.
func (s *MealService) qualifiesAsAlternative(original, candidate *ingredient.Ingredient, cust *customer.Customer) bool {
	if original.HasAlternative(candidate.Name()) {
		return true
	}

	if cust.Prefers(diet.PreferenceVegan) &&
		!original.HasTag(diet.TagVegan) &&
		candidate.HasTag(diet.TagVegan) &&
		diet.TypeSimilar(original, candidate) {
		return true
	}

	if cust.Prefers(diet.PreferenceKeto) &&
		diet.KetoReplacement(original, candidate) &&
		diet.TypeSimilar(original, candidate) {
		return true
	}

	return false
}
