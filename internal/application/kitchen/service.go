// Package kitchen provides the application layer for assigning meal
// preparation tasks to chefs.
package kitchen

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"github.com/healthyplate/v1/internal/ports/outbound"
	"go.uber.org/zap"
)

// KitchenService implements task assignment with expertise matching.
type KitchenService struct {
	chefs  outbound.ChefRepository
	logger *zap.Logger
}

// NewKitchenService creates a new kitchen service.
func NewKitchenService(chefs outbound.ChefRepository, logger *zap.Logger) inbound.KitchenService {
	return &KitchenService{
		chefs:  chefs,
		logger: logger.Named("kitchen-service"),
	}
}

// AssignTask assigns preparing mealName for orderID to the named chef. The
// assignment is refused, without error, when the chef's expertise does not
// suit the meal. A successful assignment raises the chef's workload one
// level and notifies them.
func (s *KitchenService) AssignTask(ctx context.Context, orderID, mealName, chefName string) (bool, error) {
	if strings.TrimSpace(orderID) == "" || strings.TrimSpace(mealName) == "" {
		return false, nil
	}

	c, err := s.chefs.FindByName(ctx, chefName)
	if err != nil {
		return false, err
	}

	if !suitableFor(c, mealName) {
		s.logger.Info("chef unsuitable for meal",
			zap.String("chef", c.Name()),
			zap.String("meal", mealName),
		)
		return false, nil
	}

	c.AddTask(chef.Task{
		ID:           orderID,
		MealName:     mealName,
		AssignedChef: c.Name(),
		Status:       "Assigned",
		DueTime:      "ASAP",
	})
	c.StepUpWorkload()
	c.Notify(fmt.Sprintf("New task assigned: prepare %s for order %s.", mealName, orderID))

	if err := s.chefs.Save(ctx, c); err != nil {
		return false, err
	}
	s.logger.Info("assigned kitchen task",
		zap.String("chef", c.Name()),
		zap.String("meal", mealName),
		zap.String("order_id", orderID),
	)
	return true, nil
}

// ChefTasks returns the chef's current task list.
func (s *KitchenService) ChefTasks(ctx context.Context, chefName string) ([]chef.Task, error) {
	c, err := s.chefs.FindByName(ctx, chefName)
	if err != nil {
		return nil, err
	}
	return c.Tasks(), nil
}

// ChefDetails returns the chef's full record.
func (s *KitchenService) ChefDetails(ctx context.Context, chefName string) (*chef.Chef, error) {
	return s.chefs.FindByName(ctx, chefName)
}

// suitableFor matches meal categories to required expertise. Meals outside
// the known categories suit any chef.
func suitableFor(c *chef.Chef, mealName string) bool {
	name := strings.ToLower(mealName)
	switch {
	case strings.Contains(name, "steak"):
		return c.HasExpertise("grilling") || c.HasExpertise("meats")
	case strings.Contains(name, "spaghetti"), strings.Contains(name, "pasta"), strings.Contains(name, "carbonara"):
		return c.HasExpertise("italian") || c.HasExpertise("pastas")
	case strings.Contains(name, "pizza"):
		return c.HasExpertise("italian") || c.HasExpertise("baking") || len(c.Expertise()) > 0
	default:
		return true
	}
}
