package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

// TestRecipeCreation tests recipe creation scenarios
func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Arrange
		name := "Veggie Stir Fry"
		ingredients := []string{"Broccoli", "Olive Oil", "Garlic"}
		tags := []string{"Vegan", "Quick"}

		// Act
		r, err := New(name, ingredients, 20, tags)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)

		assert.Equal(suite.T(), name, r.Name())
		assert.Equal(suite.T(), 20, r.TimeMinutes())
		assert.Equal(suite.T(), 3, r.IngredientCount())
		assert.True(suite.T(), r.Requires("Broccoli"))
		assert.True(suite.T(), r.HasTag("Vegan"))
		assert.False(suite.T(), r.HasTag("vegan"))
	})

	suite.Run("BlankName_ShouldReturnError", func() {
		// Act
		r, err := New("   ", []string{"Broccoli"}, 20, nil)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.ErrorIs(suite.T(), err, ErrBlankName)
	})

	suite.Run("NegativeTime_ShouldReturnError", func() {
		// Act
		r, err := New("Veggie Stir Fry", []string{"Broccoli"}, -1, nil)

		// Assert
		assert.Error(suite.T(), err)
		assert.Nil(suite.T(), r)
		assert.ErrorIs(suite.T(), err, ErrNegativeTime)
	})

	suite.Run("BlankEntries_ShouldBeDropped", func() {
		// Act
		r, err := New("Soup", []string{"Tomato Sauce", "  ", ""}, 40, []string{"", "Comfort"})

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 1, r.IngredientCount())
		assert.Equal(suite.T(), []string{"Comfort"}, r.Tags())
	})
}

// TestRecipeAccessors tests copy semantics of the accessors
func (suite *RecipeTestSuite) TestRecipeAccessors() {
	r, err := New("Veggie Stir Fry", []string{"Broccoli", "Garlic"}, 20, []string{"Vegan"})
	require.NoError(suite.T(), err)

	ingredients := r.Ingredients()
	ingredients[0] = "Mutated"
	assert.Equal(suite.T(), 2, r.IngredientCount())
	assert.False(suite.T(), r.Requires("Mutated"))

	tags := r.Tags()
	tags[0] = "Mutated"
	assert.True(suite.T(), r.HasTag("Vegan"))
}

// TestRecipeTestSuite runs the test suite
func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
