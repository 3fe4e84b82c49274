package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthyplate/v1/internal/infrastructure/monitoring"
	"github.com/healthyplate/v1/internal/ports/inbound"
	"go.uber.org/zap"
)

// RecommendationHandlers exposes the recipe recommendation scorer.
type RecommendationHandlers struct {
	recommendations inbound.RecommendationService
	metrics         *monitoring.MetricsCollector
	logger          *zap.Logger
}

// NewRecommendationHandlers creates the recommendation handler set.
func NewRecommendationHandlers(recommendations inbound.RecommendationService, metrics *monitoring.MetricsCollector, logger *zap.Logger) *RecommendationHandlers {
	return &RecommendationHandlers{
		recommendations: recommendations,
		metrics:         metrics,
		logger:          logger.Named("recommendation-handlers"),
	}
}

type recommendRequest struct {
	DietaryRestriction   string   `json:"dietary_restriction"`
	AvailableTimeMinutes int      `json:"available_time_minutes" binding:"required,gt=0"`
	AvailableIngredients []string `json:"available_ingredients"`
}

type recommendResponse struct {
	RecipeName  string   `json:"recipe_name,omitempty"`
	TimeMinutes int      `json:"time_minutes,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Explanation string   `json:"explanation"`
}

// Recommend scores the catalog against the user's constraints.
func (h *RecommendationHandlers) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	available := make(map[string]struct{}, len(req.AvailableIngredients))
	for _, name := range req.AvailableIngredients {
		available[name] = struct{}{}
	}

	result, err := h.recommendations.Recommend(c.Request.Context(), &inbound.RecipePreferences{
		DietaryRestriction:   req.DietaryRestriction,
		AvailableTimeMinutes: req.AvailableTimeMinutes,
		AvailableIngredients: available,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.metrics.RecommendationServed(result.Recipe != nil)

	resp := recommendResponse{Explanation: result.Explanation}
	if result.Recipe != nil {
		resp.RecipeName = result.Recipe.Name()
		resp.TimeMinutes = result.Recipe.TimeMinutes()
		resp.Ingredients = result.Recipe.Ingredients()
		resp.Tags = result.Recipe.Tags()
	}
	c.JSON(http.StatusOK, resp)
}
