package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/infrastructure/monitoring"
	"github.com/healthyplate/v1/internal/ports/inbound"
	apperrors "github.com/healthyplate/v1/pkg/errors"
	"go.uber.org/zap"
)

// OrderHandlers exposes order history, revenue and invoicing.
type OrderHandlers struct {
	orders  inbound.OrderService
	metrics *monitoring.MetricsCollector
	logger  *zap.Logger
}

// NewOrderHandlers creates the order handler set.
func NewOrderHandlers(orders inbound.OrderService, metrics *monitoring.MetricsCollector, logger *zap.Logger) *OrderHandlers {
	return &OrderHandlers{
		orders:  orders,
		metrics: metrics,
		logger:  logger.Named("order-handlers"),
	}
}

type orderView struct {
	ID            string       `json:"id"`
	CustomerEmail string       `json:"customer_email"`
	Date          time.Time    `json:"date"`
	Items         []order.Item `json:"items"`
	TotalPrice    float64      `json:"total_price"`
	Status        string       `json:"status"`
}

func newOrderView(o *order.Order) orderView {
	return orderView{
		ID:            o.ID(),
		CustomerEmail: o.CustomerEmail(),
		Date:          o.Date(),
		Items:         o.Items(),
		TotalPrice:    o.TotalPrice(),
		Status:        o.Status(),
	}
}

func newOrderViews(orders []*order.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderView(o))
	}
	return out
}

// PastOrders returns a customer's order history.
func (h *OrderHandlers) PastOrders(c *gin.Context) {
	email := c.Query("customer")
	if email == "" {
		respondValidationError(c, apperrors.NewBadRequestError("customer query parameter is required"))
		return
	}

	orders, err := h.orders.PastOrders(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders)})
}

// OrderDetails returns one order, checking customer ownership.
func (h *OrderHandlers) OrderDetails(c *gin.Context) {
	o, err := h.orders.OrderDetails(c.Request.Context(), c.Param("id"), c.Query("customer"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(o))
}

// Revenue returns total revenue, optionally restricted to a calendar month.
func (h *OrderHandlers) Revenue(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" && monthStr == "" {
		total, err := h.orders.TotalRevenue(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"total_revenue": total})
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		respondValidationError(c, apperrors.NewBadRequestError("year must be an integer"))
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		respondValidationError(c, apperrors.NewBadRequestError("month must be between 1 and 12"))
		return
	}

	total, err := h.orders.RevenueForMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "revenue": total})
}

// CompletedOrders returns every paid or delivered order.
func (h *OrderHandlers) CompletedOrders(c *gin.Context) {
	orders, err := h.orders.CompletedOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders)})
}

// GenerateInvoice builds an invoice for a completed order.
func (h *OrderHandlers) GenerateInvoice(c *gin.Context) {
	invoice, err := h.orders.GenerateInvoice(c.Request.Context(), c.Param("id"), c.Query("customer"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.InvoiceGenerated()
	c.JSON(http.StatusOK, invoice)
}

// ScheduledForDelivery returns the orders dated on a calendar day.
func (h *OrderHandlers) ScheduledForDelivery(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		respondValidationError(c, apperrors.NewBadRequestError("date must be formatted YYYY-MM-DD"))
		return
	}

	orders, err := h.orders.ScheduledForDelivery(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": newOrderViews(orders)})
}
