package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("", "alice@example.com", time.Now(), StatusPreparing)
	assert.ErrorIs(t, err, ErrBlankIdentifier)

	_, err = New("ORD-1", "   ", time.Now(), StatusPreparing)
	assert.ErrorIs(t, err, ErrBlankIdentifier)
}

func TestAddItem_FoldsTotal(t *testing.T) {
	o, err := New("ORD-1", "alice@example.com", time.Now(), StatusPaid)
	require.NoError(t, err)

	o.AddItem(Item{MealName: "Power Bowl", Quantity: 2, UnitPrice: 8.0, TotalPrice: 16.0})
	o.AddItem(Item{MealName: "Soup", Quantity: 1, UnitPrice: 4.5, TotalPrice: 4.5})

	assert.Equal(t, 20.5, o.TotalPrice())
	assert.Len(t, o.Items(), 2)
}

func TestCompleted(t *testing.T) {
	cases := []struct {
		status    string
		completed bool
	}{
		{StatusPaid, true},
		{StatusDelivered, true},
		{"paid", true},
		{"DELIVERED", true},
		{StatusPreparing, false},
		{"Cancelled", false},
	}
	for _, tc := range cases {
		o, err := New("ORD-1", "alice@example.com", time.Now(), tc.status)
		require.NoError(t, err)
		assert.Equal(t, tc.completed, o.Completed(), "status %q", tc.status)
	}
}

func TestNewInvoice(t *testing.T) {
	o, err := New("ORD-1", "alice@example.com", time.Now(), StatusPaid)
	require.NoError(t, err)
	o.AddItem(Item{MealName: "Power Bowl", Quantity: 1, UnitPrice: 16.0, TotalPrice: 16.0})

	inv := NewInvoice(o)
	assert.Equal(t, "ORD-1", inv.OrderID)
	assert.Equal(t, "alice@example.com", inv.CustomerEmail)
	assert.Equal(t, 16.0, inv.TotalAmount)
	assert.Equal(t, StatusPaid, inv.OrderStatus)
	assert.Len(t, inv.Items, 1)
}
