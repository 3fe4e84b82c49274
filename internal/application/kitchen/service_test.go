package kitchen

import (
	"context"
	"testing"

	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/infrastructure/persistence/memory"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFixture(t *testing.T) (inbound.KitchenService, outbound.ChefRepository) {
	t.Helper()
	repo := memory.NewChefRepository()
	svc := NewKitchenService(repo, zap.NewNop())

	ctx := context.Background()
	seed := []struct {
		name      string
		expertise []string
	}{
		{"Mario", []string{"italian", "pastas"}},
		{"Gordon", []string{"grilling", "meats"}},
		{"Alice", []string{"baking", "vegan dishes"}},
		{"Novice", nil},
	}
	for _, s := range seed {
		c, err := chef.New(s.name, s.expertise, chef.WorkloadLow)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
	}
	return svc, repo
}

func TestAssignTask_SuitableChef(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	assigned, err := svc.AssignTask(ctx, "ORD-1", "Spaghetti Carbonara", "Mario")
	require.NoError(t, err)
	assert.True(t, assigned)

	mario, err := repo.FindByName(ctx, "Mario")
	require.NoError(t, err)
	require.Len(t, mario.Tasks(), 1)
	task := mario.Tasks()[0]
	assert.Equal(t, "ORD-1", task.ID)
	assert.Equal(t, "Spaghetti Carbonara", task.MealName)
	assert.Equal(t, "Mario", task.AssignedChef)
	assert.Equal(t, "Assigned", task.Status)
	assert.Equal(t, "ASAP", task.DueTime)

	assert.Equal(t, chef.WorkloadMedium, mario.Workload())
	require.Len(t, mario.Notifications(), 1)
	assert.Equal(t, "New task assigned: prepare Spaghetti Carbonara for order ORD-1.", mario.Notifications()[0])
}

func TestAssignTask_UnsuitableChef(t *testing.T) {
	svc, repo := newFixture(t)
	ctx := context.Background()

	assigned, err := svc.AssignTask(ctx, "ORD-2", "Ribeye Steak", "Mario")
	require.NoError(t, err)
	assert.False(t, assigned)

	mario, err := repo.FindByName(ctx, "Mario")
	require.NoError(t, err)
	assert.Empty(t, mario.Tasks())
	assert.Equal(t, chef.WorkloadLow, mario.Workload())
}

func TestAssignTask_SuitabilityRules(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		meal     string
		chefName string
		want     bool
	}{
		{"Grilled Steak", "Gordon", true},
		{"Grilled Steak", "Alice", false},
		{"Pasta Primavera", "Mario", true},
		{"Pasta Primavera", "Gordon", false},
		// Pizza suits italian or baking expertise, or any skilled chef.
		{"Margherita Pizza", "Alice", true},
		{"Margherita Pizza", "Gordon", true},
		{"Margherita Pizza", "Novice", false},
		// Unknown categories suit anyone.
		{"Fruit Salad", "Novice", true},
	}
	for i, tc := range cases {
		orderID := string(rune('A' + i))
		assigned, err := svc.AssignTask(ctx, orderID, tc.meal, tc.chefName)
		require.NoError(t, err)
		assert.Equal(t, tc.want, assigned, "%s by %s", tc.meal, tc.chefName)
	}
}

func TestAssignTask_BlankInputs(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	assigned, err := svc.AssignTask(ctx, "", "Pasta", "Mario")
	require.NoError(t, err)
	assert.False(t, assigned)

	assigned, err = svc.AssignTask(ctx, "ORD-1", "  ", "Mario")
	require.NoError(t, err)
	assert.False(t, assigned)
}

func TestAssignTask_UnknownChef(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.AssignTask(context.Background(), "ORD-1", "Pasta", "Ghost")
	assert.ErrorIs(t, err, chef.ErrNotFound)
}

func TestChefTasksAndDetails(t *testing.T) {
	svc, _ := newFixture(t)
	ctx := context.Background()

	_, err := svc.AssignTask(ctx, "ORD-1", "Pasta", "Mario")
	require.NoError(t, err)

	tasks, err := svc.ChefTasks(ctx, "Mario")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	details, err := svc.ChefDetails(ctx, "Mario")
	require.NoError(t, err)
	assert.Equal(t, "Mario", details.Name())

	_, err = svc.ChefTasks(ctx, "Ghost")
	assert.ErrorIs(t, err, chef.ErrNotFound)
}
