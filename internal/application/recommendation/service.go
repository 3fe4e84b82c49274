// Package recommendation provides the recipe recommendation scorer: a
// multi-criteria match of catalog recipes against a user's time, diet and
// pantry constraints.
package recommendation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

const (
	explanationNoPreferences = "User preferences not provided."
	explanationNoMatch       = "Sorry, no recipe matches all your criteria from the current database."
)

// Gate weights. Every candidate passed all three gates, so the fixed part
// of the score is constant; the per-ingredient bonus rewards recipes using
// more of what the user already has.
const (
	timeGateScore       = 10
	dietGateScore       = 20
	ingredientGateScore = 30
	overlapBonus        = 5
)

// Pantry staples assumed always on hand for ingredient sufficiency.
var pantryStaples = []string{"Olive Oil", "Garlic"}

// RecommendationService implements the recipe scorer.
type RecommendationService struct {
	recipes outbound.RecipeRepository
	logger  *zap.Logger
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(recipes outbound.RecipeRepository, logger *zap.Logger) inbound.RecommendationService {
	return &RecommendationService{
		recipes: recipes,
		logger:  logger.Named("recommendation-service"),
	}
}

type candidate struct {
	recipe  *recipe.Recipe
	score   int
	overlap int
}

// Recommend scores every catalog recipe against the user's constraints and
// returns the best candidate with an explanation, or an explanatory
// no-match result. Failures are data, never errors.
func (s *RecommendationService) Recommend(ctx context.Context, prefs *inbound.RecipePreferences) (inbound.Recommendation, error) {
	if prefs == nil {
		return inbound.Recommendation{Explanation: explanationNoPreferences}, nil
	}

	all, err := s.recipes.All(ctx)
	if err != nil {
		return inbound.Recommendation{}, err
	}

	var best *candidate
	var runnerUp *candidate
	var overBudget *recipe.Recipe

	for _, r := range all {
		if r.TimeMinutes() > prefs.AvailableTimeMinutes {
			if overBudget == nil || r.Name() < overBudget.Name() {
				overBudget = r
			}
			continue
		}
		if !dietMatch(r, prefs.DietaryRestriction) || !ingredientsSufficient(r, prefs.AvailableIngredients) {
			continue
		}

		c := &candidate{
			recipe:  r,
			overlap: overlapCount(r, prefs.AvailableIngredients),
		}
		c.score = timeGateScore + dietGateScore + ingredientGateScore + overlapBonus*c.overlap

		switch {
		case best == nil:
			best = c
		case c.beats(best):
			runnerUp = best
			best = c
		case runnerUp == nil || c.beats(runnerUp):
			runnerUp = c
		}
	}

	if best == nil {
		return inbound.Recommendation{Explanation: explanationNoMatch}, nil
	}

	s.logger.Info("recommended recipe",
		zap.String("recipe", best.recipe.Name()),
		zap.Int("score", best.score),
	)
	return inbound.Recommendation{
		Recipe:      best.recipe,
		Explanation: s.explain(best, runnerUp, overBudget, prefs),
	}, nil
}

// beats implements the selection order: higher score wins, equal scores go
// to the recipe with strictly fewer required ingredients.
func (c *candidate) beats(other *candidate) bool {
	if c.score != other.score {
		return c.score > other.score
	}
	return c.recipe.IngredientCount() < other.recipe.IngredientCount()
}

func dietMatch(r *recipe.Recipe, restriction string) bool {
	if restriction == "" {
		return true
	}
	return r.HasTag(restriction)
}

// ingredientsSufficient checks every required ingredient is on hand or a
// pantry staple.
func ingredientsSufficient(r *recipe.Recipe, available map[string]struct{}) bool {
	for _, required := range r.Ingredients() {
		if _, ok := available[required]; ok {
			continue
		}
		if isStaple(required) {
			continue
		}
		return false
	}
	return true
}

func overlapCount(r *recipe.Recipe, available map[string]struct{}) int {
	count := 0
	for _, required := range r.Ingredients() {
		if _, ok := available[required]; ok {
			count++
		}
	}
	return count
}

func isStaple(name string) bool {
	for _, staple := range pantryStaples {
		if strings.EqualFold(name, staple) {
			return true
		}
	}
	return false
}

// explain builds the human-readable recommendation text: the winner, the
// on-hand ingredients it uses, diet and timing, plus commentary on the
// nearest alternatives when there are any.
func (s *RecommendationService) explain(best, runnerUp *candidate, overBudget *recipe.Recipe, prefs *inbound.RecipePreferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The best recipe for you is %q.\n", best.recipe.Name())

	if prefs.DietaryRestriction != "" {
		fmt.Fprintf(&b, "It is %s, requires only %s (plus %s, common pantry items assumed available),\n",
			prefs.DietaryRestriction, usedIngredientsText(best.recipe, prefs), strings.Join(pantryStaples, " and "))
	} else {
		fmt.Fprintf(&b, "It requires only %s (plus %s, common pantry items assumed available),\n",
			usedIngredientsText(best.recipe, prefs), strings.Join(pantryStaples, " and "))
	}

	fmt.Fprintf(&b, "and can be prepared in %d minutes, which is within your available %d minutes.",
		best.recipe.TimeMinutes(), prefs.AvailableTimeMinutes)

	if runnerUp != nil {
		fmt.Fprintf(&b, "\n%q is also a good option (%d minutes, uses available ingredients), but %q uses more of your specified available ingredients directly.",
			runnerUp.recipe.Name(), runnerUp.recipe.TimeMinutes(), best.recipe.Name())
	}
	if overBudget != nil {
		fmt.Fprintf(&b, "\n%q takes %d minutes, which is longer than your available time.",
			overBudget.Name(), overBudget.TimeMinutes())
	}
	return b.String()
}

// usedIngredientsText lists the user's on-hand ingredients the recipe uses,
// sorted. When none matched directly it falls back to the recipe's own
// non-staple ingredients, and finally to a single named example.
func usedIngredientsText(r *recipe.Recipe, prefs *inbound.RecipePreferences) string {
	var used []string
	for _, required := range r.Ingredients() {
		if _, ok := prefs.AvailableIngredients[required]; ok {
			used = append(used, required)
		}
	}
	if len(used) > 0 {
		sort.Strings(used)
		return strings.Join(used, ", ")
	}

	var own []string
	for _, required := range r.Ingredients() {
		if !isStaple(required) {
			own = append(own, required)
		}
	}
	if len(own) > 0 {
		sort.Strings(own)
		return strings.Join(own, ", ")
	}

	all := r.Ingredients()
	if len(all) > 0 {
		sort.Strings(all)
		return fmt.Sprintf("core recipe ingredients (e.g., %s)", all[0])
	}
	return "no additional ingredients"
}
