package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// CustomerHandlers exposes dietary profile management.
type CustomerHandlers struct {
	customers inbound.CustomerService
	logger    *zap.Logger
}

// NewCustomerHandlers creates the customer handler set.
func NewCustomerHandlers(customers inbound.CustomerService, logger *zap.Logger) *CustomerHandlers {
	return &CustomerHandlers{
		customers: customers,
		logger:    logger.Named("customer-handlers"),
	}
}

type registerCustomerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type profileEntryRequest struct {
	Value string `json:"value" binding:"required"`
}

type customerView struct {
	Email       string   `json:"email"`
	Preferences []string `json:"preferences"`
	Allergies   []string `json:"allergies"`
}

func newCustomerView(c *customer.Customer) customerView {
	return customerView{
		Email:       c.Email(),
		Preferences: c.Preferences(),
		Allergies:   c.Allergies(),
	}
}

// Register creates (or returns) the profile for an email.
func (h *CustomerHandlers) Register(c *gin.Context) {
	var req registerCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	profile, err := h.customers.RegisterOrGet(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCustomerView(profile))
}

// AddPreference records a dietary preference.
func (h *CustomerHandlers) AddPreference(c *gin.Context) {
	var req profileEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.customers.AddPreference(c.Request.Context(), c.Param("email"), req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAllergy records an allergy token.
func (h *CustomerHandlers) AddAllergy(c *gin.Context) {
	var req profileEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.customers.AddAllergy(c.Request.Context(), c.Param("email"), req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DietaryInfo returns an existing profile.
func (h *CustomerHandlers) DietaryInfo(c *gin.Context) {
	profile, err := h.customers.DietaryInfo(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCustomerView(profile))
}
