package recommendation

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"github.com/healthyplate/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) (inbound.RecommendationService, outbound.RecipeRepository) {
	t.Helper()
	recipes := memory.NewRecipeRepository()
	return NewRecommendationService(recipes, zap.NewNop()), recipes
}

func seedRecipes(t *testing.T, recipes outbound.RecipeRepository) {
	t.Helper()
	ctx := context.Background()
	seed := []struct {
		name        string
		ingredients []string
		timeMinutes int
		tags        []string
	}{
		{"Veggie Stir Fry", []string{"Broccoli", "Olive Oil", "Garlic"}, 20, []string{"Vegan", "Quick"}},
		{"Tomato Basil Soup", []string{"Tomato Sauce", "Garlic", "Olive Oil", "Basil"}, 40, []string{"Vegan", "Comfort"}},
		{"Vegan Pesto Pasta", []string{"Pasta", "Basil", "Olive Oil", "Garlic"}, 30, []string{"Vegan"}},
		{"Chicken Alfredo", []string{"Chicken", "Pasta", "Cheese"}, 35, []string{"Comfort"}},
	}
	for _, s := range seed {
		require.NoError(t, recipes.Save(ctx, testutils.NewRecipe(s.name, s.ingredients, s.timeMinutes, s.tags)))
	}
}

func available(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func TestRecommend_NilPreferences(t *testing.T) {
	svc, _ := newService(t)

	result, err := svc.Recommend(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, result.Recipe)
	assert.Equal(t, "User preferences not provided.", result.Explanation)
}

func TestRecommend_NoMatch(t *testing.T) {
	svc, recipes := newService(t)
	seedRecipes(t, recipes)

	result, err := svc.Recommend(context.Background(), &inbound.RecipePreferences{
		DietaryRestriction:   "Vegan",
		AvailableTimeMinutes: 30,
		AvailableIngredients: available("Chicken"),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Recipe)
	assert.Equal(t, "Sorry, no recipe matches all your criteria from the current database.", result.Explanation)
}

func TestRecommend_BestMatch(t *testing.T) {
	svc, recipes := newService(t)
	seedRecipes(t, recipes)

	result, err := svc.Recommend(context.Background(), &inbound.RecipePreferences{
		DietaryRestriction:   "Vegan",
		AvailableTimeMinutes: 30,
		AvailableIngredients: available("Broccoli"),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Recipe)
	assert.Equal(t, "Veggie Stir Fry", result.Recipe.Name())
	assert.Contains(t, result.Explanation, `The best recipe for you is "Veggie Stir Fry".`)
	assert.Contains(t, result.Explanation, "Broccoli")
	assert.Contains(t, result.Explanation, "prepared in 20 minutes")
	assert.Contains(t, result.Explanation, "available 30 minutes")
	// Tomato Basil Soup is over the time budget and gets a mention.
	assert.Contains(t, result.Explanation, `"Tomato Basil Soup" takes 40 minutes`)
}

func TestRecommend_TimeGateExcludes(t *testing.T) {
	svc, recipes := newService(t)
	seedRecipes(t, recipes)

	result, err := svc.Recommend(context.Background(), &inbound.RecipePreferences{
		DietaryRestriction:   "Vegan",
		AvailableTimeMinutes: 10,
		AvailableIngredients: available("Broccoli"),
	})
	require.NoError(t, err)
	assert.Nil(t, result.Recipe)
}

func TestRecommend_StaplesAssumedAvailable(t *testing.T) {
	svc, recipes := newService(t)
	ctx := context.Background()
	// Only pantry staples required: sufficient with nothing on hand.
	require.NoError(t, recipes.Save(ctx, testutils.NewRecipe("Garlic Oil", []string{"Olive Oil", "Garlic"}, 5, []string{"Vegan"})))

	result, err := svc.Recommend(ctx, &inbound.RecipePreferences{
		DietaryRestriction:   "Vegan",
		AvailableTimeMinutes: 30,
		AvailableIngredients: available(),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Recipe)
	assert.Equal(t, "Garlic Oil", result.Recipe.Name())
}

func TestRecommend_OverlapBonusWins(t *testing.T) {
	svc, recipes := newService(t)
	ctx := context.Background()
	require.NoError(t, recipes.Save(ctx, testutils.NewRecipe("Broccoli Bowl", []string{"Broccoli", "Garlic"}, 20, []string{"Vegan"})))
	require.NoError(t, recipes.Save(ctx, testutils.NewRecipe("Plain Oil Toast", []string{"Olive Oil"}, 10, []string{"Vegan"})))

	result, err := svc.Recommend(ctx, &inbound.RecipePreferences{
		DietaryRestriction:   "Vegan",
		AvailableTimeMinutes: 30,
		AvailableIngredients: available("Broccoli"),
	})
	require.NoError(t, err)

	// Broccoli Bowl overlaps one on-hand ingredient and outscores the
	// no-overlap toast despite needing more ingredients.
	require.NotNil(t, result.Recipe)
	assert.Equal(t, "Broccoli Bowl", result.Recipe.Name())
	assert.Contains(t, result.Explanation, `"Plain Oil Toast" is also a good option`)
}

func TestRecommend_TieBreakFewerIngredients(t *testing.T) {
	svc, recipes := newService(t)
	ctx := context.Background()
	// Identical scores: no overlap for either, both pass all gates.
	require.NoError(t, recipes.Save(ctx, testutils.NewRecipe("Two Staples", []string{"Olive Oil", "Garlic"}, 15, []string{"Vegan"})))
	require.NoError(t, recipes.Save(ctx, testutils.NewRecipe("One Staple", []string{"Garlic"}, 15, []string{"Vegan"})))

	result, err := svc.Recommend(ctx, &inbound.RecipePreferences{
		DietaryRestriction:   "Vegan",
		AvailableTimeMinutes: 30,
		AvailableIngredients: available(),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Recipe)
	assert.Equal(t, "One Staple", result.Recipe.Name())
}

func TestRecommend_EmptyRestrictionMatchesAll(t *testing.T) {
	svc, recipes := newService(t)
	seedRecipes(t, recipes)

	result, err := svc.Recommend(context.Background(), &inbound.RecipePreferences{
		DietaryRestriction:   "",
		AvailableTimeMinutes: 60,
		AvailableIngredients: available("Chicken", "Pasta", "Cheese"),
	})
	require.NoError(t, err)

	// Chicken Alfredo overlaps three on-hand ingredients, beating the vegan
	// recipes that only use staples.
	require.NotNil(t, result.Recipe)
	assert.Equal(t, "Chicken Alfredo", result.Recipe.Name())
}
