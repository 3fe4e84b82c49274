package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// InventoryHandlers exposes ingredient stock tracking.
type InventoryHandlers struct {
	inventory inbound.InventoryService
	logger    *zap.Logger
}

// NewInventoryHandlers creates the inventory handler set.
func NewInventoryHandlers(inventory inbound.InventoryService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		inventory: inventory,
		logger:    logger.Named("inventory-handlers"),
	}
}

// List returns all stock levels.
func (h *InventoryHandlers) List(c *gin.Context) {
	all, err := h.inventory.AllStockLevels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": newIngredientViews(all)})
}

// Get returns one ingredient's stock record.
func (h *InventoryHandlers) Get(c *gin.Context) {
	ing, err := h.inventory.Stock(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIngredientView(ing))
}

type useIngredientsRequest struct {
	Quantities map[string]int `json:"quantities" binding:"required"`
}

// Use consumes stock for a meal, all-or-nothing.
func (h *InventoryHandlers) Use(c *gin.Context) {
	var req useIngredientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ok, err := h.inventory.UseIngredients(c.Request.Context(), req.Quantities)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consumed": ok})
}

type setLevelRequest struct {
	Level int `json:"level" binding:"gte=0"`
}

// SetStock replaces an ingredient's stock level.
func (h *InventoryHandlers) SetStock(c *gin.Context) {
	var req setLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.inventory.SetStock(c.Request.Context(), c.Param("name"), req.Level); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetReorderLevel replaces an ingredient's restocking threshold.
func (h *InventoryHandlers) SetReorderLevel(c *gin.Context) {
	var req setLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.inventory.SetReorderLevel(c.Request.Context(), c.Param("name"), req.Level); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// NeedingRestock lists everything below its reorder level.
func (h *InventoryHandlers) NeedingRestock(c *gin.Context) {
	low, err := h.inventory.NeedingRestock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ingredients": newIngredientViews(low)})
}
