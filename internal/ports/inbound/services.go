// Package inbound defines the interfaces for inbound ports (primary/driving
// adapters): the use cases the application exposes.
package inbound

import (
	"context"
	"time"

	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/meal"
	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/domain/supplier"
)

// MealService assembles custom meals and suggests substitute ingredients.
// Business failures never surface as errors: they are recorded on the meal
// request (FailureReason) or yield empty suggestion lists. Returned errors
// are infrastructure failures only.
type MealService interface {
	// StartCustomMeal opens a fresh request. Blank email or meal name yields
	// a nil request and meal.ErrBlankInput.
	StartCustomMeal(ctx context.Context, customerEmail, mealName string) (*meal.Request, error)

	// AddIngredient resolves the named ingredient and appends a snapshot to
	// the request. A missing ingredient records a failure reason on the
	// request and returns false without sealing it.
	AddIngredient(ctx context.Context, req *meal.Request, ingredientName string) (bool, error)

	// FinalizeCustomMeal validates the selection against the customer's
	// current dietary profile, recomputes price and meal tags, and seals the
	// request (success or failure).
	FinalizeCustomMeal(ctx context.Context, req *meal.Request) (*meal.Request, error)

	// SuggestAlternatives searches the catalog for compatible substitutes
	// for the named ingredient. Precondition failures yield an empty list.
	// Output order is unspecified.
	SuggestAlternatives(ctx context.Context, originalIngredientName, customerEmail string) ([]*ingredient.Ingredient, error)
}

// RecipePreferences captures one recommendation query. A nil value means
// the user supplied no preferences at all.
type RecipePreferences struct {
	// DietaryRestriction is a single recipe tag the user requires, empty for
	// no restriction.
	DietaryRestriction string
	// AvailableTimeMinutes is the user's preparation time budget.
	AvailableTimeMinutes int
	// AvailableIngredients are the ingredient names the user has on hand.
	AvailableIngredients map[string]struct{}
}

// Recommendation is the scorer's answer: the chosen recipe (nil when
// nothing qualifies) and a human-readable explanation.
type Recommendation struct {
	Recipe      *recipe.Recipe
	Explanation string
}

// RecommendationService scores catalog recipes against user constraints.
type RecommendationService interface {
	Recommend(ctx context.Context, prefs *RecipePreferences) (Recommendation, error)
}

// CustomerService manages dietary profiles. Customers are auto-registered
// on first reference.
type CustomerService interface {
	RegisterOrGet(ctx context.Context, email string) (*customer.Customer, error)
	AddPreference(ctx context.Context, email, preference string) error
	AddAllergy(ctx context.Context, email, allergy string) error
	DietaryInfo(ctx context.Context, email string) (*customer.Customer, error)
}

// InventoryService tracks ingredient stock levels.
type InventoryService interface {
	Stock(ctx context.Context, ingredientName string) (*ingredient.Ingredient, error)
	AllStockLevels(ctx context.Context) ([]*ingredient.Ingredient, error)
	// UseIngredients consumes stock all-or-nothing: if any ingredient is
	// missing or short, nothing is decremented and false is returned.
	UseIngredients(ctx context.Context, quantities map[string]int) (bool, error)
	UseSingle(ctx context.Context, ingredientName string, quantity int) (bool, error)
	NeedingRestock(ctx context.Context) ([]*ingredient.Ingredient, error)
	SetStock(ctx context.Context, ingredientName string, level int) error
	SetReorderLevel(ctx context.Context, ingredientName string, level int) error
}

// KitchenService assigns preparation tasks to chefs.
type KitchenService interface {
	// AssignTask assigns preparing mealName for orderID to the named chef,
	// refusing chefs whose expertise does not suit the meal.
	AssignTask(ctx context.Context, orderID, mealName, chefName string) (bool, error)
	ChefTasks(ctx context.Context, chefName string) ([]chef.Task, error)
	ChefDetails(ctx context.Context, chefName string) (*chef.Chef, error)
}

// OrderService exposes order history, revenue figures and invoicing.
type OrderService interface {
	PastOrders(ctx context.Context, customerEmail string) ([]*order.Order, error)
	OrderDetails(ctx context.Context, orderID, customerEmail string) (*order.Order, error)
	RevenueForMonth(ctx context.Context, year int, month time.Month) (float64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CompletedOrders(ctx context.Context) ([]*order.Order, error)
	GenerateInvoice(ctx context.Context, orderID, customerEmail string) (order.Invoice, error)
	ScheduledForDelivery(ctx context.Context, date time.Time) ([]*order.Order, error)
}

// PurchasingService generates supplier purchase orders.
type PurchasingService interface {
	RealTimePrice(ctx context.Context, ingredientName, supplierName string) (float64, error)
	GenerateManualPurchaseOrder(ctx context.Context, managerName, ingredientName string, quantity int, supplierName string) (supplier.PurchaseOrder, error)
	// CheckAndGenerateAutoOrders raises purchase orders for every ingredient
	// below its reorder level that has a supplier link, returning one
	// notification line per generated order.
	CheckAndGenerateAutoOrders(ctx context.Context) ([]string, error)
}
