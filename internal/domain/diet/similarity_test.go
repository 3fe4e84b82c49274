package diet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeSimilar_SharedCategoryTag(t *testing.T) {
	chicken := mustIngredient(t, "Chicken", "protein")
	tofu := mustIngredient(t, "Tofu", "protein", TagVegan)
	oliveOil := mustIngredient(t, "Olive Oil", "fat")

	assert.True(t, TypeSimilar(chicken, tofu))
	assert.False(t, TypeSimilar(chicken, oliveOil))
}

func TestTypeSimilar_NamePairs(t *testing.T) {
	cheese := mustIngredient(t, "Cheese", "dairy")
	yeast := mustIngredient(t, "Nutritional Yeast", TagVegan)
	pasta := mustIngredient(t, "Pasta", TagHighCarb)
	zoodles := mustIngredient(t, "Zucchini Noodles", TagLowCarb)
	flour := mustIngredient(t, "Flour")
	almondFlour := mustIngredient(t, "Almond Flour")

	assert.True(t, TypeSimilar(cheese, yeast))
	assert.True(t, TypeSimilar(pasta, zoodles))
	assert.True(t, TypeSimilar(flour, almondFlour))

	// Pairs are ordered: the noodle side does not match a pasta candidate.
	assert.False(t, TypeSimilar(zoodles, pasta))
}

func TestTypeSimilar_Nil(t *testing.T) {
	chicken := mustIngredient(t, "Chicken", "protein")

	assert.False(t, TypeSimilar(nil, chicken))
	assert.False(t, TypeSimilar(chicken, nil))
}
