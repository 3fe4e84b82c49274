package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/infrastructure/monitoring"
	"github.com/healthyplate/v1/internal/ports/inbound"
	apperrors "github.com/healthyplate/v1/pkg/errors"
	"go.uber.org/zap"
)

// PurchasingHandlers exposes supplier pricing and purchase orders.
type PurchasingHandlers struct {
	purchasing inbound.PurchasingService
	metrics    *monitoring.MetricsCollector
	logger     *zap.Logger
}

// NewPurchasingHandlers creates the purchasing handler set.
func NewPurchasingHandlers(purchasing inbound.PurchasingService, metrics *monitoring.MetricsCollector, logger *zap.Logger) *PurchasingHandlers {
	return &PurchasingHandlers{
		purchasing: purchasing,
		metrics:    metrics,
		logger:     logger.Named("purchasing-handlers"),
	}
}

// RealTimePrice returns a supplier's current quote for an ingredient.
func (h *PurchasingHandlers) RealTimePrice(c *gin.Context) {
	ingredientName := c.Query("ingredient")
	supplierName := c.Query("supplier")
	if ingredientName == "" || supplierName == "" {
		respondValidationError(c, apperrors.NewBadRequestError("ingredient and supplier query parameters are required"))
		return
	}

	price, err := h.purchasing.RealTimePrice(c.Request.Context(), ingredientName, supplierName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ingredient": ingredientName,
		"supplier":   supplierName,
		"price":      price,
	})
}

type manualOrderRequest struct {
	ManagerName    string `json:"manager_name" binding:"required"`
	IngredientName string `json:"ingredient_name" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
	SupplierName   string `json:"supplier_name" binding:"required"`
}

// GenerateManualOrder raises a purchase order on explicit request.
func (h *PurchasingHandlers) GenerateManualOrder(c *gin.Context) {
	var req manualOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	po, err := h.purchasing.GenerateManualPurchaseOrder(
		c.Request.Context(), req.ManagerName, req.IngredientName, req.Quantity, req.SupplierName)
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.PurchaseOrderGenerated(false)
	c.JSON(http.StatusCreated, po)
}

// RunAutoOrderCheck raises purchase orders for everything below its
// reorder level.
func (h *PurchasingHandlers) RunAutoOrderCheck(c *gin.Context) {
	notifications, err := h.purchasing.CheckAndGenerateAutoOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	for range notifications {
		h.metrics.PurchaseOrderGenerated(true)
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
