package inventory

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"github.com/healthyplate/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixture(t *testing.T) (inbound.InventoryService, outbound.IngredientRepository) {
	t.Helper()
	repo := memory.NewIngredientRepository()
	svc := NewInventoryService(repo, zap.NewNop())

	ctx := context.Background()
	seed := []*ingredient.Ingredient{
		testutils.NewIngredientBuilder().WithName("Broccoli").WithStock(10).WithReorderLevel(3).Build(),
		testutils.NewIngredientBuilder().WithName("Chicken").WithStock(2).WithReorderLevel(5).Build(),
		testutils.NewIngredientBuilder().WithName("Pasta").WithStock(8).WithReorderLevel(4).Build(),
	}
	for _, ing := range seed {
		require.NoError(t, repo.Save(ctx, ing))
	}
	return svc, repo
}

func TestUseIngredients_Consumes(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	ok, err := svc.UseIngredients(ctx, map[string]int{"Broccoli": 4, "Pasta": 2})
	require.NoError(t, err)
	assert.True(t, ok)

	broccoli, err := repo.FindByName(ctx, "Broccoli")
	require.NoError(t, err)
	assert.Equal(t, 6, broccoli.Stock())

	pasta, err := repo.FindByName(ctx, "Pasta")
	require.NoError(t, err)
	assert.Equal(t, 6, pasta.Stock())
}

func TestUseIngredients_AllOrNothing(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	// Chicken has only 2 in stock; the whole batch must be refused with no
	// partial decrement.
	ok, err := svc.UseIngredients(ctx, map[string]int{"Broccoli": 4, "Chicken": 3})
	require.NoError(t, err)
	assert.False(t, ok)

	broccoli, err := repo.FindByName(ctx, "Broccoli")
	require.NoError(t, err)
	assert.Equal(t, 10, broccoli.Stock())
}

func TestUseIngredients_UnknownIngredient(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	ok, err := svc.UseIngredients(ctx, map[string]int{"Broccoli": 1, "Unicorn Meat": 1})
	require.NoError(t, err)
	assert.False(t, ok)

	broccoli, err := repo.FindByName(ctx, "Broccoli")
	require.NoError(t, err)
	assert.Equal(t, 10, broccoli.Stock())
}

func TestUseSingle(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	ok, err := svc.UseSingle(ctx, "Pasta", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	pasta, err := repo.FindByName(ctx, "Pasta")
	require.NoError(t, err)
	assert.Equal(t, 5, pasta.Stock())

	ok, err = svc.UseSingle(ctx, "Pasta", 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNeedingRestock(t *testing.T) {
	svc, _ := newFixture(t)

	low, err := svc.NeedingRestock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Chicken", low[0].Name())
}

func TestSetStockAndReorderLevel(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetStock(ctx, "Broccoli", 1))
	require.NoError(t, svc.SetReorderLevel(ctx, "Broccoli", 4))

	broccoli, err := repo.FindByName(ctx, "Broccoli")
	require.NoError(t, err)
	assert.Equal(t, 1, broccoli.Stock())
	assert.Equal(t, 4, broccoli.ReorderLevel())
	assert.True(t, broccoli.NeedsRestocking())

	err = svc.SetStock(ctx, "Unicorn Meat", 5)
	assert.ErrorIs(t, err, ingredient.ErrNotFound)
}
