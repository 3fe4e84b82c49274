package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/domain/meal"
	"github.com/healthyplate/v1/internal/infrastructure/monitoring"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// MealHandlers exposes custom meal composition and ingredient substitution.
type MealHandlers struct {
	meals   inbound.MealService
	metrics *monitoring.MetricsCollector
	logger  *zap.Logger
}

// NewMealHandlers creates the meal handler set.
func NewMealHandlers(meals inbound.MealService, metrics *monitoring.MetricsCollector, logger *zap.Logger) *MealHandlers {
	return &MealHandlers{
		meals:   meals,
		metrics: metrics,
		logger:  logger.Named("meal-handlers"),
	}
}

type composeMealRequest struct {
	CustomerEmail string   `json:"customer_email" binding:"required,email"`
	MealName      string   `json:"meal_name" binding:"required"`
	Ingredients   []string `json:"ingredients" binding:"required"`
}

type composeMealResponse struct {
	CustomerEmail string           `json:"customer_email"`
	MealName      string           `json:"meal_name"`
	Successful    bool             `json:"successful"`
	FailureReason string           `json:"failure_reason,omitempty"`
	TotalPrice    float64          `json:"total_price"`
	MealTags      []string         `json:"meal_tags,omitempty"`
	Items         []ingredientView `json:"items"`
}

// ComposeMeal runs a full composition session: start, add every requested
// ingredient, finalize. The outcome, success or business failure, is always
// a 200 with the sealed request state.
func (h *MealHandlers) ComposeMeal(c *gin.Context) {
	var req composeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	request, err := h.meals.StartCustomMeal(c.Request.Context(), req.CustomerEmail, req.MealName)
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.MealStarted()

	for _, name := range req.Ingredients {
		if _, err := h.meals.AddIngredient(c.Request.Context(), request, name); err != nil {
			respondError(c, err)
			return
		}
	}

	request, err = h.meals.FinalizeCustomMeal(c.Request.Context(), request)
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.MealFinalized(request.Successful())
	if !request.Successful() {
		h.metrics.MealFailure("finalize")
	}

	c.JSON(http.StatusOK, newComposeMealResponse(request))
}

func newComposeMealResponse(r *meal.Request) composeMealResponse {
	return composeMealResponse{
		CustomerEmail: r.CustomerEmail(),
		MealName:      r.MealName(),
		Successful:    r.Successful(),
		FailureReason: r.FailureReason(),
		TotalPrice:    r.TotalPrice(),
		MealTags:      r.MealTags(),
		Items:         newIngredientViews(r.Items()),
	}
}

// SuggestAlternatives returns compatible substitutes for an ingredient.
func (h *MealHandlers) SuggestAlternatives(c *gin.Context) {
	ingredientName := c.Param("name")
	customerEmail := c.Query("customer")

	suggestions, err := h.meals.SuggestAlternatives(c.Request.Context(), ingredientName, customerEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.SuggestionQueried()

	c.JSON(http.StatusOK, gin.H{
		"original":     ingredientName,
		"alternatives": newIngredientViews(suggestions),
	})
}
