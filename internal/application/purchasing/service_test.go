package purchasing

import (
	"context"
	"strings"
	"testing"

	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/supplier"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"github.com/healthyplate/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	ingredients outbound.IngredientRepository
	suppliers   outbound.SupplierRepository
	service     inbound.PurchasingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ingredients: memory.NewIngredientRepository(),
		suppliers:   memory.NewSupplierRepository(),
	}
	f.service = NewPurchasingService(f.ingredients, f.suppliers, zap.NewNop())

	ctx := context.Background()
	chicken := testutils.NewIngredientBuilder().
		WithName("Chicken").WithUnit("kg").WithStock(2).WithReorderLevel(5).Build()
	broccoli := testutils.NewIngredientBuilder().
		WithName("Broccoli").WithUnit("head").WithStock(20).WithReorderLevel(3).Build()
	pasta := testutils.NewIngredientBuilder().
		WithName("Pasta").WithUnit("box").WithStock(1).WithReorderLevel(4).Build()
	for _, ing := range []*ingredient.Ingredient{chicken, broccoli, pasta} {
		require.NoError(t, f.ingredients.Save(ctx, ing))
	}

	freshFarms, err := supplier.New("SUP-1", "FreshFarms", "orders@freshfarms.test")
	require.NoError(t, err)
	freshFarms.SetItemPrice("Chicken", 4.20)
	freshFarms.SetItemPrice("Broccoli", 1.10)
	require.NoError(t, f.suppliers.Save(ctx, freshFarms))

	pantryCo, err := supplier.New("SUP-2", "PantryCo", "sales@pantryco.test")
	require.NoError(t, err)
	require.NoError(t, f.suppliers.Save(ctx, pantryCo))

	require.NoError(t, f.suppliers.SaveLink(ctx, supplier.Link{
		IngredientName:    "Chicken",
		SupplierID:        "SUP-1",
		DefaultReorderQty: 20,
	}))
	// Pasta is linked to a supplier with no quote for it.
	require.NoError(t, f.suppliers.SaveLink(ctx, supplier.Link{
		IngredientName:    "Pasta",
		SupplierID:        "SUP-2",
		DefaultReorderQty: 30,
	}))
	return f
}

func TestRealTimePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	price, err := f.service.RealTimePrice(ctx, "Chicken", "FreshFarms")
	require.NoError(t, err)
	assert.Equal(t, 4.20, price)

	_, err = f.service.RealTimePrice(ctx, "Pasta", "FreshFarms")
	assert.ErrorIs(t, err, supplier.ErrNoQuotedPrice)

	_, err = f.service.RealTimePrice(ctx, "Chicken", "GhostFoods")
	assert.ErrorIs(t, err, supplier.ErrNotFound)
}

func TestGenerateManualPurchaseOrder(t *testing.T) {
	f := newFixture(t)

	po, err := f.service.GenerateManualPurchaseOrder(context.Background(), "Manager Meg", "Broccoli", 12, "FreshFarms")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(po.ID, "MANUAL-PO-"))
	assert.Len(t, po.ID, len("MANUAL-PO-")+8)
	assert.Equal(t, "Broccoli", po.IngredientName)
	assert.Equal(t, "FreshFarms", po.SupplierName)
	assert.Equal(t, 12, po.Quantity)
	assert.Equal(t, "head", po.Unit)
	assert.Equal(t, 1.10, po.PricePerUnit)
	assert.InDelta(t, 13.20, po.TotalCost, 0.001)
	assert.Equal(t, "Generated", po.Status)
	assert.False(t, po.Automatic)
}

func TestGenerateManualPurchaseOrder_UnknownIngredient(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GenerateManualPurchaseOrder(context.Background(), "Meg", "Unicorn Meat", 5, "FreshFarms")
	assert.ErrorIs(t, err, ingredient.ErrNotFound)
}

func TestCheckAndGenerateAutoOrders(t *testing.T) {
	f := newFixture(t)

	notifications, err := f.service.CheckAndGenerateAutoOrders(context.Background())
	require.NoError(t, err)

	// Chicken (low, linked, quoted) generates; Pasta (low, linked, unquoted)
	// is skipped; Broccoli is not low.
	require.Len(t, notifications, 1)
	n := notifications[0]
	assert.Contains(t, n, "Auto purchase order AUTO-PO-")
	assert.Contains(t, n, "20 kg of Chicken from FreshFarms for $84.00.")
}

func TestCheckAndGenerateAutoOrders_NoLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Drop Broccoli's stock below its threshold; it has no supplier link so
	// no order is generated for it.
	broccoli, err := f.ingredients.FindByName(ctx, "Broccoli")
	require.NoError(t, err)
	broccoli.SetStock(0)
	require.NoError(t, f.ingredients.Save(ctx, broccoli))

	notifications, err := f.service.CheckAndGenerateAutoOrders(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0], "Chicken")
}
