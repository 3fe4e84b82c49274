package meal

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionNames(suggestions []*ingredient.Ingredient) []string {
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name())
	}
	return names
}

func TestSuggestAlternatives_ExplicitList(t *testing.T) {
	f := newMealFixture(t)
	f.seedCatalog(t)
	f.seedCustomer(t, "vegan@example.com", []string{"Vegan"}, nil)

	suggestions, err := f.service.SuggestAlternatives(context.Background(), "Chicken", "vegan@example.com")
	require.NoError(t, err)
	assert.Contains(t, suggestionNames(suggestions), "Tofu")
}

func TestSuggestAlternatives_VeganHeuristic(t *testing.T) {
	f := newMealFixture(t)
	f.seedCatalog(t)
	f.seedCustomer(t, "vegan@example.com", []string{"Vegan"}, nil)

	// Nutritional Yeast is both the explicit alternative for Cheese and a
	// vegan type-similar candidate; it must appear exactly once.
	suggestions, err := f.service.SuggestAlternatives(context.Background(), "Cheese", "vegan@example.com")
	require.NoError(t, err)

	names := suggestionNames(suggestions)
	assert.Contains(t, names, "Nutritional Yeast")
	count := 0
	for _, n := range names {
		if n == "Nutritional Yeast" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSuggestAlternatives_KetoHeuristic(t *testing.T) {
	f := newMealFixture(t)
	f.seedCatalog(t)
	f.seedCustomer(t, "keto@example.com", []string{"Keto"}, nil)

	suggestions, err := f.service.SuggestAlternatives(context.Background(), "Pasta", "keto@example.com")
	require.NoError(t, err)
	assert.Contains(t, suggestionNames(suggestions), "Zucchini Noodles")
}

func TestSuggestAlternatives_FiltersIncompatibleCandidates(t *testing.T) {
	f := newMealFixture(t)
	f.seedCatalog(t)
	// Allergic to soy: the explicit Tofu alternative must be filtered out.
	f.seedCustomer(t, "soyfree@example.com", nil, []string{"tofu"})

	suggestions, err := f.service.SuggestAlternatives(context.Background(), "Chicken", "soyfree@example.com")
	require.NoError(t, err)
	assert.NotContains(t, suggestionNames(suggestions), "Tofu")
}

func TestSuggestAlternatives_PreconditionFailures(t *testing.T) {
	f := newMealFixture(t)
	f.seedCatalog(t)
	f.seedCustomer(t, "vegan@example.com", []string{"Vegan"}, nil)
	ctx := context.Background()

	// Blank inputs.
	suggestions, err := f.service.SuggestAlternatives(ctx, "", "vegan@example.com")
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	suggestions, err = f.service.SuggestAlternatives(ctx, "Chicken", "  ")
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	// Unknown original ingredient.
	suggestions, err = f.service.SuggestAlternatives(ctx, "Unicorn Meat", "vegan@example.com")
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	// Unknown customer.
	suggestions, err = f.service.SuggestAlternatives(ctx, "Chicken", "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggestAlternatives_NoHeuristicWithoutPreference(t *testing.T) {
	f := newMealFixture(t)
	f.seedCatalog(t)
	// No preferences: only explicit alternatives qualify.
	f.seedCustomer(t, "plain@example.com", nil, nil)

	suggestions, err := f.service.SuggestAlternatives(context.Background(), "Pasta", "plain@example.com")
	require.NoError(t, err)

	names := suggestionNames(suggestions)
	assert.Contains(t, names, "Zucchini Noodles") // explicit alternative
	assert.NotContains(t, names, "Broccoli")
}
