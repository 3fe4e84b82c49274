// Package testutils provides test data factories for consistent test data
// generation.
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/domain/recipe"
)

// IngredientBuilder provides a fluent interface for building test ingredients.
type IngredientBuilder struct {
	name         string
	price        float64
	tags         []string
	alternatives []string
	stock        int
	unit         string
	reorderLevel int
}

// NewIngredientBuilder creates a builder with randomized defaults.
func NewIngredientBuilder() *IngredientBuilder {
	faker := gofakeit.New(time.Now().UnixNano())
	return &IngredientBuilder{
		name:  fmt.Sprintf("%s %s", faker.AdjectiveDescriptive(), faker.Vegetable()),
		price: faker.Price(0.5, 20),
		stock: faker.Number(5, 50),
		unit:  "unit",
	}
}

// WithName sets the ingredient name.
func (b *IngredientBuilder) WithName(name string) *IngredientBuilder {
	b.name = name
	return b
}

// WithPrice sets the catalog price.
func (b *IngredientBuilder) WithPrice(price float64) *IngredientBuilder {
	b.price = price
	return b
}

// WithTags sets the tag list.
func (b *IngredientBuilder) WithTags(tags ...string) *IngredientBuilder {
	b.tags = tags
	return b
}

// WithAlternatives sets the explicit alternatives list.
func (b *IngredientBuilder) WithAlternatives(names ...string) *IngredientBuilder {
	b.alternatives = names
	return b
}

// WithStock sets the stock level.
func (b *IngredientBuilder) WithStock(stock int) *IngredientBuilder {
	b.stock = stock
	return b
}

// WithUnit sets the stock-keeping unit.
func (b *IngredientBuilder) WithUnit(unit string) *IngredientBuilder {
	b.unit = unit
	return b
}

// WithReorderLevel sets the restocking threshold.
func (b *IngredientBuilder) WithReorderLevel(level int) *IngredientBuilder {
	b.reorderLevel = level
	return b
}

// Build creates the ingredient, panicking on invalid test data.
func (b *IngredientBuilder) Build() *ingredient.Ingredient {
	ing, err := ingredient.NewStocked(b.name, b.price, b.tags, b.alternatives, b.stock, b.unit, b.reorderLevel)
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid ingredient: %v", err))
	}
	return ing
}

// NewCustomer creates a profile with the given preferences and allergies.
func NewCustomer(email string, preferences, allergies []string) *customer.Customer {
	c, err := customer.New(email)
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid customer: %v", err))
	}
	for _, p := range preferences {
		c.AddPreference(p)
	}
	for _, a := range allergies {
		c.AddAllergy(a)
	}
	return c
}

// RandomEmail returns a unique fake email address.
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", uuid.NewString()[:8])
}

// NewRecipe creates a recipe, panicking on invalid test data.
func NewRecipe(name string, ingredients []string, timeMinutes int, tags []string) *recipe.Recipe {
	r, err := recipe.New(name, ingredients, timeMinutes, tags)
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid recipe: %v", err))
	}
	return r
}

// NewOrder creates an order with one line priced at total.
func NewOrder(id, customerEmail string, date time.Time, status string, total float64) *order.Order {
	o, err := order.New(id, customerEmail, date, status)
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid order: %v", err))
	}
	o.AddItem(order.Item{
		MealName:   gofakeit.Dinner(),
		Quantity:   1,
		UnitPrice:  total,
		TotalPrice: total,
	})
	return o
}
