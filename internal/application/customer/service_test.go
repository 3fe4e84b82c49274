package customer

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterOrGet_CreatesOnFirstReference(t *testing.T) {
	repo := memory.NewCustomerRepository()
	svc := NewCustomerService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.RegisterOrGet(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email())
	assert.Empty(t, created.Preferences())

	// Second call returns the stored profile, not a new one.
	again, err := svc.RegisterOrGet(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Same(t, created, again)
}

func TestRegisterOrGet_BlankEmail(t *testing.T) {
	svc := NewCustomerService(memory.NewCustomerRepository(), zap.NewNop())

	_, err := svc.RegisterOrGet(context.Background(), "   ")
	assert.ErrorIs(t, err, customer.ErrBlankEmail)
}

func TestAddPreferenceAndAllergy(t *testing.T) {
	repo := memory.NewCustomerRepository()
	svc := NewCustomerService(repo, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.AddPreference(ctx, "bob@example.com", "Vegan"))
	require.NoError(t, svc.AddPreference(ctx, "bob@example.com", "Vegan"))
	require.NoError(t, svc.AddPreference(ctx, "bob@example.com", "Keto"))
	require.NoError(t, svc.AddAllergy(ctx, "bob@example.com", "nuts"))

	c, err := svc.DietaryInfo(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan", "Keto"}, c.Preferences())
	assert.Equal(t, []string{"nuts"}, c.Allergies())
}

func TestDietaryInfo_DoesNotCreate(t *testing.T) {
	svc := NewCustomerService(memory.NewCustomerRepository(), zap.NewNop())

	_, err := svc.DietaryInfo(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, customer.ErrNotFound)
}
