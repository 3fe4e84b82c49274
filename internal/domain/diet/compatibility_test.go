package diet

import (
	"testing"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIngredient(t *testing.T, name string, tags ...string) *ingredient.Ingredient {
	t.Helper()
	ing, err := ingredient.New(name, 1.0, tags, nil)
	require.NoError(t, err)
	return ing
}

func TestCheck_VeganRule(t *testing.T) {
	broccoli := mustIngredient(t, "Broccoli", TagVegan, "vegetable")
	chicken := mustIngredient(t, "Chicken", "protein", TagNonVegan)

	assert.Equal(t, ViolationNone, Check(broccoli, []string{PreferenceVegan}, nil))
	assert.Equal(t, ViolationVegan, Check(chicken, []string{PreferenceVegan}, nil))

	// Without the preference the rule does not apply.
	assert.Equal(t, ViolationNone, Check(chicken, nil, nil))
	// Preference matching is case-sensitive.
	assert.Equal(t, ViolationNone, Check(chicken, []string{"vegan"}, nil))
}

func TestCheck_KetoRule(t *testing.T) {
	pasta := mustIngredient(t, "Pasta", TagHighCarb, "grain")
	zoodles := mustIngredient(t, "Zucchini Noodles", TagLowCarb, TagVegan, "vegetable")
	broccoli := mustIngredient(t, "Broccoli", TagVegan, "vegetable")

	keto := []string{PreferenceKeto}

	assert.Equal(t, ViolationCarb, Check(pasta, keto, nil))
	assert.Equal(t, ViolationNone, Check(broccoli, keto, nil))

	// The named exemplar is excused even though it substitutes for pasta.
	assert.Equal(t, ViolationNone, Check(zoodles, keto, nil))
}

func TestCheck_KetoRestrictedNameWithoutReplacementTag(t *testing.T) {
	// "Pasta" with no tags at all still conflicts: the restricted name needs
	// the replacement tag to pass.
	plainPasta := mustIngredient(t, "Pasta")
	taggedPasta := mustIngredient(t, "Pasta", TagLowCarb)

	assert.Equal(t, ViolationCarb, Check(plainPasta, []string{PreferenceKeto}, nil))
	assert.Equal(t, ViolationNone, Check(taggedPasta, []string{PreferenceKeto}, nil))
}

func TestCheck_AllergyRule(t *testing.T) {
	shrimp := mustIngredient(t, "Shrimp", "shellfish", "protein")
	almondFlour := mustIngredient(t, "Almond Flour", "flour", TagLowCarb)
	broccoli := mustIngredient(t, "Broccoli", TagVegan)

	// Name substring match, case-insensitive.
	assert.Equal(t, ViolationAllergy, Check(shrimp, nil, []string{"shrimp"}))
	assert.Equal(t, ViolationAllergy, Check(almondFlour, nil, []string{"ALMOND"}))

	// Tag match, case-insensitive.
	assert.Equal(t, ViolationAllergy, Check(shrimp, nil, []string{"Shellfish"}))

	// Blank allergy tokens are skipped.
	assert.Equal(t, ViolationNone, Check(broccoli, nil, []string{"  ", ""}))
	assert.Equal(t, ViolationNone, Check(broccoli, nil, []string{"nuts"}))
}

func TestCheck_FirstViolationWins(t *testing.T) {
	// Chicken fails the vegan rule before the allergy rule gets a say.
	chicken := mustIngredient(t, "Chicken", "protein")

	v := Check(chicken, []string{PreferenceVegan}, []string{"chicken"})
	assert.Equal(t, ViolationVegan, v)
}

func TestCheck_NilIngredient(t *testing.T) {
	assert.NotEqual(t, ViolationNone, Check(nil, nil, nil))
}

func TestCompatible(t *testing.T) {
	tofu := mustIngredient(t, "Tofu", TagVegan, "protein")

	assert.True(t, Compatible(tofu, []string{PreferenceVegan}, nil))
	assert.False(t, Compatible(tofu, nil, []string{"soy", "tofu"}))
}

func TestKetoReplacement(t *testing.T) {
	pasta := mustIngredient(t, "Pasta", TagHighCarb, "grain")
	zoodles := mustIngredient(t, "Zucchini Noodles", TagLowCarb, TagVegan)
	broccoli := mustIngredient(t, "Broccoli", TagLowCarb, TagVegan)

	assert.True(t, KetoReplacement(pasta, zoodles))

	// Low-carb alone is not enough; the candidate must be a named exemplar.
	assert.False(t, KetoReplacement(pasta, broccoli))

	// Only the restricted category gets replacements.
	assert.False(t, KetoReplacement(broccoli, zoodles))

	assert.False(t, KetoReplacement(nil, zoodles))
	assert.False(t, KetoReplacement(pasta, nil))
}
