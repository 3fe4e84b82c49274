// Package handlers provides the Gin HTTP handlers for the JSON API.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/domain/supplier"
	apperrors "github.com/healthyplate/v1/pkg/errors"
)

// respondError maps domain sentinel errors onto the structured API error
// shape. Unrecognized errors become internal errors.
func respondError(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.StatusCode(), apperrors.ToErrorResponse(appErr, c.GetString("request_id")))
}

func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ingredient.ErrNotFound):
		return apperrors.NewAppError(apperrors.CodeIngredientNotFound, "Ingredient not found", "")
	case errors.Is(err, customer.ErrNotFound):
		return apperrors.NewAppError(apperrors.CodeCustomerNotFound, "Customer not found", "")
	case errors.Is(err, recipe.ErrNotFound):
		return apperrors.NewAppError(apperrors.CodeRecipeNotFound, "Recipe not found", "")
	case errors.Is(err, chef.ErrNotFound):
		return apperrors.NewAppError(apperrors.CodeChefNotFound, "Chef not found", "")
	case errors.Is(err, order.ErrNotFound):
		return apperrors.NewAppError(apperrors.CodeOrderNotFound, "Order not found", "")
	case errors.Is(err, supplier.ErrNotFound):
		return apperrors.NewAppError(apperrors.CodeSupplierNotFound, "Supplier not found", "")
	case errors.Is(err, order.ErrNotAuthorized):
		return apperrors.NewAppError(apperrors.CodeOrderNotAuthorized, "Order belongs to a different customer", "")
	case errors.Is(err, order.ErrNotCompleted):
		return apperrors.NewAppError(apperrors.CodeOrderNotCompleted, "Order is not completed", "")
	case errors.Is(err, supplier.ErrNoQuotedPrice):
		return apperrors.NewAppError(apperrors.CodeNoQuotedPrice, "Supplier has no quoted price", "")
	case errors.Is(err, ingredient.ErrBlankName),
		errors.Is(err, ingredient.ErrNegativePrice),
		errors.Is(err, customer.ErrBlankEmail):
		return apperrors.NewBadRequestError(err.Error())
	default:
		return apperrors.Wrap(err, "request failed")
	}
}

// respondValidationError reports a request binding failure, unpacking
// field-level validation errors when present.
func respondValidationError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]apperrors.ValidationError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, apperrors.ValidationError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: fmt.Sprintf("field %s failed %q validation", fe.Field(), fe.Tag()),
			})
		}
		appErr := apperrors.NewValidationErrors(details)
		c.JSON(http.StatusBadRequest, apperrors.ToErrorResponse(appErr, c.GetString("request_id")))
		return
	}

	appErr := apperrors.NewValidationError(err.Error())
	c.JSON(http.StatusBadRequest, apperrors.ToErrorResponse(appErr, c.GetString("request_id")))
}

// ingredientView is the JSON shape of a catalog ingredient.
type ingredientView struct {
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	Tags         []string `json:"tags"`
	Alternatives []string `json:"alternatives,omitempty"`
	Stock        int      `json:"stock"`
	Unit         string   `json:"unit"`
	ReorderLevel int      `json:"reorder_level"`
}

func newIngredientView(ing *ingredient.Ingredient) ingredientView {
	return ingredientView{
		Name:         ing.Name(),
		Price:        ing.Price(),
		Tags:         ing.Tags(),
		Alternatives: ing.Alternatives(),
		Stock:        ing.Stock(),
		Unit:         ing.Unit(),
		ReorderLevel: ing.ReorderLevel(),
	}
}

func newIngredientViews(ings []*ingredient.Ingredient) []ingredientView {
	out := make([]ingredientView, 0, len(ings))
	for _, ing := range ings {
		out = append(out, newIngredientView(ing))
	}
	return out
}
