package memory

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/domain/supplier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSupplier(t *testing.T, id, name string) *supplier.Supplier {
	t.Helper()
	s, err := supplier.New(id, name, name+"@example.com")
	require.NoError(t, err)
	return s
}

func TestSupplierRepository_FindByIDAndName(t *testing.T) {
	repo := NewSupplierRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, seedSupplier(t, "SUP-1", "FreshFarms")))

	byID, err := repo.FindByID(ctx, "SUP-1")
	require.NoError(t, err)
	assert.Equal(t, "FreshFarms", byID.Name())

	byName, err := repo.FindByName(ctx, "FreshFarms")
	require.NoError(t, err)
	assert.Equal(t, "SUP-1", byName.ID())

	_, err = repo.FindByID(ctx, "SUP-9")
	assert.ErrorIs(t, err, supplier.ErrNotFound)
	_, err = repo.FindByName(ctx, "GhostFoods")
	assert.ErrorIs(t, err, supplier.ErrNotFound)
}

func TestSupplierRepository_AllSortedByID(t *testing.T) {
	repo := NewSupplierRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, seedSupplier(t, "SUP-2", "PantryCo")))
	require.NoError(t, repo.Save(ctx, seedSupplier(t, "SUP-1", "FreshFarms")))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "SUP-1", all[0].ID())
	assert.Equal(t, "SUP-2", all[1].ID())
}

func TestSupplierRepository_Links(t *testing.T) {
	repo := NewSupplierRepository()
	ctx := context.Background()

	_, err := repo.LinkFor(ctx, "Chicken")
	assert.ErrorIs(t, err, supplier.ErrNoLink)

	link := supplier.Link{IngredientName: "Chicken", SupplierID: "SUP-1", DefaultReorderQty: 20}
	require.NoError(t, repo.SaveLink(ctx, link))

	found, err := repo.LinkFor(ctx, "Chicken")
	require.NoError(t, err)
	assert.Equal(t, link, found)

	// Replacing a link is an upsert.
	link.DefaultReorderQty = 50
	require.NoError(t, repo.SaveLink(ctx, link))
	found, err = repo.LinkFor(ctx, "Chicken")
	require.NoError(t, err)
	assert.Equal(t, 50, found.DefaultReorderQty)
}
