package gorm

import (
	"github.com/healthyplate/v1/internal/domain/chef"
	"github.com/healthyplate/v1/internal/domain/customer"
	"github.com/healthyplate/v1/internal/domain/ingredient"
	"github.com/healthyplate/v1/internal/domain/order"
	"github.com/healthyplate/v1/internal/domain/recipe"
	"github.com/healthyplate/v1/internal/domain/supplier"
)

// IngredientToModel converts a domain ingredient to its GORM model.
func IngredientToModel(ing *ingredient.Ingredient) *IngredientModel {
	return &IngredientModel{
		Name:         ing.Name(),
		Price:        ing.Price(),
		Tags:         ing.Tags(),
		Alternatives: ing.Alternatives(),
		Stock:        ing.Stock(),
		Unit:         ing.Unit(),
		ReorderLevel: ing.ReorderLevel(),
	}
}

// ModelToIngredient converts a GORM model to a domain ingredient.
func ModelToIngredient(m *IngredientModel) (*ingredient.Ingredient, error) {
	return ingredient.NewStocked(m.Name, m.Price, m.Tags, m.Alternatives, m.Stock, m.Unit, m.ReorderLevel)
}

// CustomerToModel converts a domain customer to its GORM model.
func CustomerToModel(c *customer.Customer) *CustomerModel {
	return &CustomerModel{
		Email:       c.Email(),
		Preferences: c.Preferences(),
		Allergies:   c.Allergies(),
	}
}

// ModelToCustomer converts a GORM model to a domain customer.
func ModelToCustomer(m *CustomerModel) (*customer.Customer, error) {
	c, err := customer.New(m.Email)
	if err != nil {
		return nil, err
	}
	for _, p := range m.Preferences {
		c.AddPreference(p)
	}
	for _, a := range m.Allergies {
		c.AddAllergy(a)
	}
	return c, nil
}

// RecipeToModel converts a domain recipe to its GORM model.
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		Name:        r.Name(),
		Ingredients: r.Ingredients(),
		TimeMinutes: r.TimeMinutes(),
		Tags:        r.Tags(),
	}
}

// ModelToRecipe converts a GORM model to a domain recipe.
func ModelToRecipe(m *RecipeModel) (*recipe.Recipe, error) {
	return recipe.New(m.Name, m.Ingredients, m.TimeMinutes, m.Tags)
}

// ChefToModel converts a domain chef to its GORM model.
func ChefToModel(c *chef.Chef) *ChefModel {
	tasks := make(TaskSlice, 0, len(c.Tasks()))
	for _, t := range c.Tasks() {
		tasks = append(tasks, TaskRecord{
			ID:           t.ID,
			MealName:     t.MealName,
			AssignedChef: t.AssignedChef,
			Status:       t.Status,
			DueTime:      t.DueTime,
		})
	}
	return &ChefModel{
		Name:          c.Name(),
		Expertise:     c.Expertise(),
		Workload:      string(c.Workload()),
		Tasks:         tasks,
		Notifications: c.Notifications(),
	}
}

// ModelToChef converts a GORM model to a domain chef.
func ModelToChef(m *ChefModel) (*chef.Chef, error) {
	c, err := chef.New(m.Name, m.Expertise, chef.Workload(m.Workload))
	if err != nil {
		return nil, err
	}
	for _, t := range m.Tasks {
		c.AddTask(chef.Task{
			ID:           t.ID,
			MealName:     t.MealName,
			AssignedChef: t.AssignedChef,
			Status:       t.Status,
			DueTime:      t.DueTime,
		})
	}
	for _, n := range m.Notifications {
		c.Notify(n)
	}
	return c, nil
}

// OrderToModel converts a domain order to its GORM model.
func OrderToModel(o *order.Order) *OrderModel {
	items := make(ItemSlice, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemRecord{
			MealName:   item.MealName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return &OrderModel{
		ID:            o.ID(),
		CustomerEmail: o.CustomerEmail(),
		Date:          o.Date(),
		Items:         items,
		TotalPrice:    o.TotalPrice(),
		Status:        o.Status(),
	}
}

// ModelToOrder converts a GORM model to a domain order.
func ModelToOrder(m *OrderModel) (*order.Order, error) {
	o, err := order.New(m.ID, m.CustomerEmail, m.Date, m.Status)
	if err != nil {
		return nil, err
	}
	for _, item := range m.Items {
		o.AddItem(order.Item{
			MealName:   item.MealName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return o, nil
}

// SupplierToModel converts a domain supplier to its GORM model.
func SupplierToModel(s *supplier.Supplier) *SupplierModel {
	prices := make(PriceMap)
	for _, ingName := range s.PricedIngredients() {
		if price, ok := s.PriceFor(ingName); ok {
			prices[ingName] = price
		}
	}
	return &SupplierModel{
		ID:           s.ID(),
		Name:         s.Name(),
		ContactEmail: s.ContactEmail(),
		ItemPrices:   prices,
	}
}

// ModelToSupplier converts a GORM model to a domain supplier.
func ModelToSupplier(m *SupplierModel) (*supplier.Supplier, error) {
	s, err := supplier.New(m.ID, m.Name, m.ContactEmail)
	if err != nil {
		return nil, err
	}
	for ingName, price := range m.ItemPrices {
		s.SetItemPrice(ingName, price)
	}
	return s, nil
}

// LinkToModel converts a supplier link to its GORM model.
func LinkToModel(l supplier.Link) *SupplierLinkModel {
	return &SupplierLinkModel{
		IngredientName:    l.IngredientName,
		SupplierID:        l.SupplierID,
		DefaultReorderQty: l.DefaultReorderQty,
	}
}

// ModelToLink converts a GORM model to a supplier link.
func ModelToLink(m *SupplierLinkModel) supplier.Link {
	return supplier.Link{
		IngredientName:    m.IngredientName,
		SupplierID:        m.SupplierID,
		DefaultReorderQty: m.DefaultReorderQty,
	}
}
