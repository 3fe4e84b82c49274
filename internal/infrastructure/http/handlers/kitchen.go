package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// KitchenHandlers exposes chef task assignment.
type KitchenHandlers struct {
	kitchen inbound.KitchenService
	logger  *zap.Logger
}

// NewKitchenHandlers creates the kitchen handler set.
func NewKitchenHandlers(kitchen inbound.KitchenService, logger *zap.Logger) *KitchenHandlers {
	return &KitchenHandlers{
		kitchen: kitchen,
		logger:  logger.Named("kitchen-handlers"),
	}
}

type assignTaskRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	MealName string `json:"meal_name" binding:"required"`
	ChefName string `json:"chef_name" binding:"required"`
}

// AssignTask assigns a preparation task to a chef.
func (h *KitchenHandlers) AssignTask(c *gin.Context) {
	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	assigned, err := h.kitchen.AssignTask(c.Request.Context(), req.OrderID, req.MealName, req.ChefName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assigned": assigned})
}

// ChefTasks returns a chef's task list.
func (h *KitchenHandlers) ChefTasks(c *gin.Context) {
	tasks, err := h.kitchen.ChefTasks(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// ChefDetails returns a chef's full record.
func (h *KitchenHandlers) ChefDetails(c *gin.Context) {
	chefDetails, err := h.kitchen.ChefDetails(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":          chefDetails.Name(),
		"expertise":     chefDetails.Expertise(),
		"workload":      chefDetails.Workload(),
		"tasks":         chefDetails.Tasks(),
		"notifications": chefDetails.Notifications(),
	})
}
