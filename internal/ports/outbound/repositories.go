// Package outbound defines the interfaces for outbound ports (secondary/driven
// adapters): the stores the application consumes.
package outbound

import (
	"context"
	"time"

	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/domain/supplier"
)

// IngredientRepository is the ingredient catalog. Lookups are by exact name.
// Missing ingredients are reported as ingredient.ErrNotFound.
type IngredientRepository interface {
	FindByName(ctx context.Context, name string) (*ingredient.Ingredient, error)
	All(ctx context.Context) ([]*ingredient.Ingredient, error)
	Save(ctx context.Context, ing *ingredient.Ingredient) error
	Delete(ctx context.Context, name string) error
}

// CustomerRepository is the dietary profile store keyed by email.
type CustomerRepository interface {
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
	All(ctx context.Context) ([]*customer.Customer, error)
	Save(ctx context.Context, c *customer.Customer) error
}

// RecipeRepository is the read-only recipe catalog.
type RecipeRepository interface {
	FindByName(ctx context.Context, name string) (*recipe.Recipe, error)
	All(ctx context.Context) ([]*recipe.Recipe, error)
	Save(ctx context.Context, r *recipe.Recipe) error
}

// ChefRepository is the kitchen staff store keyed by chef name.
type ChefRepository interface {
	FindByName(ctx context.Context, name string) (*chef.Chef, error)
	All(ctx context.Context) ([]*chef.Chef, error)
	Save(ctx context.Context, c *chef.Chef) error
}

// OrderRepository is the order history store keyed by order ID.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*order.Order, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]*order.Order, error)
	FindByDate(ctx context.Context, date time.Time) ([]*order.Order, error)
	All(ctx context.Context) ([]*order.Order, error)
	Save(ctx context.Context, o *order.Order) error
}

// SupplierRepository is the vendor store keyed by supplier ID. It also
// holds the ingredient-to-supplier links used for automatic reordering;
// a missing link is reported as supplier.ErrNoLink.
type SupplierRepository interface {
	FindByID(ctx context.Context, id string) (*supplier.Supplier, error)
	FindByName(ctx context.Context, name string) (*supplier.Supplier, error)
	All(ctx context.Context) ([]*supplier.Supplier, error)
	Save(ctx context.Context, s *supplier.Supplier) error

	LinkFor(ctx context.Context, ingredientName string) (supplier.Link, error)
	SaveLink(ctx context.Context, link supplier.Link) error
}
