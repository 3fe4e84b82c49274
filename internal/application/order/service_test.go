package order

import (
	"context"
	"testing"
	"time"

	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/test/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixture(t *testing.T) inbound.OrderService {
	t.Helper()
	repo := memory.NewOrderRepository()
	svc := NewOrderService(repo, zap.NewNop())

	ctx := context.Background()
	june10 := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	june12 := time.Date(2025, time.June, 12, 18, 30, 0, 0, time.UTC)
	july1 := time.Date(2025, time.July, 1, 9, 0, 0, 0, time.UTC)

	seed := []*order.Order{
		testutils.NewOrder("ORD-1001", "alice@example.com", june10, order.StatusPaid, 34.00),
		testutils.NewOrder("ORD-1002", "alice@example.com", june12, order.StatusPreparing, 12.00),
		testutils.NewOrder("ORD-1003", "bob@example.com", june12, order.StatusDelivered, 19.50),
		testutils.NewOrder("ORD-1004", "alice@example.com", july1, order.StatusPaid, 8.25),
	}
	for _, o := range seed {
		require.NoError(t, repo.Save(ctx, o))
	}
	return svc
}

func TestPastOrders(t *testing.T) {
	svc := newFixture(t)

	orders, err := svc.PastOrders(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	orders, err = svc.PastOrders(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderDetails_OwnershipEnforced(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	o, err := svc.OrderDetails(ctx, "ORD-1001", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", o.ID())

	_, err = svc.OrderDetails(ctx, "ORD-1001", "bob@example.com")
	assert.ErrorIs(t, err, order.ErrNotAuthorized)

	_, err = svc.OrderDetails(ctx, "ORD-9999", "alice@example.com")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestRevenueForMonth_CompletedOnly(t *testing.T) {
	svc := newFixture(t)

	// June counts the Paid and Delivered orders, not the one still preparing.
	total, err := svc.RevenueForMonth(context.Background(), 2025, time.June)
	require.NoError(t, err)
	assert.InDelta(t, 53.50, total, 0.001)

	total, err = svc.RevenueForMonth(context.Background(), 2025, time.August)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTotalRevenue(t *testing.T) {
	svc := newFixture(t)

	total, err := svc.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 61.75, total, 0.001)
}

func TestCompletedOrders(t *testing.T) {
	svc := newFixture(t)

	completed, err := svc.CompletedOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, completed, 3)
	for _, o := range completed {
		assert.True(t, o.Completed())
	}
}

func TestGenerateInvoice(t *testing.T) {
	svc := newFixture(t)
	ctx := context.Background()

	inv, err := svc.GenerateInvoice(ctx, "ORD-1001", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", inv.OrderID)
	assert.Equal(t, "alice@example.com", inv.CustomerEmail)
	assert.InDelta(t, 34.00, inv.TotalAmount, 0.001)

	// Incomplete order.
	_, err = svc.GenerateInvoice(ctx, "ORD-1002", "alice@example.com")
	assert.ErrorIs(t, err, order.ErrNotCompleted)

	// Wrong customer.
	_, err = svc.GenerateInvoice(ctx, "ORD-1001", "bob@example.com")
	assert.ErrorIs(t, err, order.ErrNotAuthorized)
}

func TestScheduledForDelivery(t *testing.T) {
	svc := newFixture(t)

	orders, err := svc.ScheduledForDelivery(context.Background(),
		time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
