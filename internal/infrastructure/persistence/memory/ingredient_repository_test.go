package memory

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientRepository_SaveAndFind(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()

	broccoli := testutils.NewIngredientBuilder().WithName("Broccoli").Build()
	require.NoError(t, repo.Save(ctx, broccoli))

	found, err := repo.FindByName(ctx, "Broccoli")
	require.NoError(t, err)
	assert.Equal(t, "Broccoli", found.Name())

	_, err = repo.FindByName(ctx, "broccoli")
	assert.ErrorIs(t, err, ingredient.ErrNotFound)
}

func TestIngredientRepository_AllSortedByName(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()

	for _, name := range []string{"Pasta", "Broccoli", "Chicken"} {
		require.NoError(t, repo.Save(ctx, testutils.NewIngredientBuilder().WithName(name).Build()))
	}

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Broccoli", all[0].Name())
	assert.Equal(t, "Chicken", all[1].Name())
	assert.Equal(t, "Pasta", all[2].Name())
}

func TestIngredientRepository_SaveReplaces(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutils.NewIngredientBuilder().WithName("Pasta").WithPrice(3.50).Build()))
	require.NoError(t, repo.Save(ctx, testutils.NewIngredientBuilder().WithName("Pasta").WithPrice(4.00).Build()))

	found, err := repo.FindByName(ctx, "Pasta")
	require.NoError(t, err)
	assert.Equal(t, 4.00, found.Price())

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIngredientRepository_Delete(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutils.NewIngredientBuilder().WithName("Pasta").Build()))
	require.NoError(t, repo.Delete(ctx, "Pasta"))

	_, err := repo.FindByName(ctx, "Pasta")
	assert.ErrorIs(t, err, ingredient.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "Pasta"), ingredient.ErrNotFound)
}

func TestIngredientRepository_NilSave(t *testing.T) {
	repo := NewIngredientRepository()
	assert.Error(t, repo.Save(context.Background(), nil))
}
