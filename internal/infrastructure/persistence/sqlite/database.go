// Package sqlite provides SQLite database setup and seed data.
package sqlite

import (
	"fmt"
	"time"

	gormModels "github.com/healthyplate/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database.
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.IngredientModel{},
		&gormModels.CustomerModel{},
		&gormModels.RecipeModel{},
		&gormModels.ChefModel{},
		&gormModels.OrderModel{},
		&gormModels.SupplierModel{},
		&gormModels.SupplierLinkModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a demo catalog. Seeding is
// skipped when ingredients already exist.
func SeedDatabase(db *gorm.DB) error {
	var ingredientCount int64
	db.Model(&gormModels.IngredientModel{}).Count(&ingredientCount)
	if ingredientCount > 0 {
		return nil
	}

	ingredients := []gormModels.IngredientModel{
		{
			Name:         "Pasta",
			Price:        2.50,
			Tags:         []string{"high_carb", "grain", "main_course"},
			Alternatives: []string{"Zucchini Noodles"},
			Stock:        40,
			Unit:         "kg",
			ReorderLevel: 10,
		},
		{
			Name:         "Zucchini Noodles",
			Price:        3.50,
			Tags:         []string{"low_carb", "vegan", "vegetable", "main_course"},
			Stock:        25,
			Unit:         "kg",
			ReorderLevel: 8,
		},
		{
			Name:         "Broccoli",
			Price:        1.50,
			Tags:         []string{"vegan", "vegetable"},
			Stock:        30,
			Unit:         "kg",
			ReorderLevel: 10,
		},
		{
			Name:         "Chicken",
			Price:        5.00,
			Tags:         []string{"non_vegan", "protein"},
			Alternatives: []string{"Tofu"},
			Stock:        6,
			Unit:         "kg",
			ReorderLevel: 12,
		},
		{
			Name:         "Tofu",
			Price:        2.00,
			Tags:         []string{"vegan", "protein"},
			Stock:        20,
			Unit:         "kg",
			ReorderLevel: 6,
		},
		{
			Name:         "Cheese",
			Price:        2.20,
			Tags:         []string{"non_vegan", "cheese_flavor", "topping"},
			Alternatives: []string{"Nutritional Yeast"},
			Stock:        15,
			Unit:         "kg",
			ReorderLevel: 5,
		},
		{
			Name:         "Nutritional Yeast",
			Price:        3.00,
			Tags:         []string{"vegan", "cheese_flavor", "topping"},
			Stock:        10,
			Unit:         "kg",
			ReorderLevel: 3,
		},
		{
			Name:         "Tomato Sauce",
			Price:        1.20,
			Tags:         []string{"vegan", "sauce_base"},
			Stock:        35,
			Unit:         "l",
			ReorderLevel: 10,
		},
		{
			Name:         "Olive Oil",
			Price:        0.80,
			Tags:         []string{"vegan"},
			Stock:        50,
			Unit:         "l",
			ReorderLevel: 15,
		},
		{
			Name:         "Garlic",
			Price:        0.30,
			Tags:         []string{"vegan", "vegetable"},
			Stock:        60,
			Unit:         "kg",
			ReorderLevel: 20,
		},
		{
			Name:         "Flour",
			Price:        0.90,
			Tags:         []string{"high_carb", "flour"},
			Alternatives: []string{"Almond Flour"},
			Stock:        45,
			Unit:         "kg",
			ReorderLevel: 12,
		},
		{
			Name:         "Almond Flour",
			Price:        2.80,
			Tags:         []string{"low_carb", "flour"},
			Stock:        12,
			Unit:         "kg",
			ReorderLevel: 4,
		},
		{
			Name:         "Shrimp",
			Price:        6.50,
			Tags:         []string{"non_vegan", "protein", "shellfish"},
			Stock:        8,
			Unit:         "kg",
			ReorderLevel: 5,
		},
	}
	for i := range ingredients {
		if err := db.Create(&ingredients[i]).Error; err != nil {
			return fmt.Errorf("failed to seed ingredient: %w", err)
		}
	}

	customers := []gormModels.CustomerModel{
		{
			Email:       "vegan@example.com",
			Preferences: []string{"Vegan"},
			Allergies:   []string{},
		},
		{
			Email:       "keto@example.com",
			Preferences: []string{"Keto"},
			Allergies:   []string{},
		},
		{
			Email:       "nutfree@example.com",
			Preferences: []string{},
			Allergies:   []string{"nuts"},
		},
		{
			Email:       "regular@example.com",
			Preferences: []string{},
			Allergies:   []string{},
		},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			return fmt.Errorf("failed to seed customer: %w", err)
		}
	}

	recipes := []gormModels.RecipeModel{
		{
			Name:        "Veggie Stir Fry",
			Ingredients: []string{"Broccoli", "Olive Oil", "Garlic"},
			TimeMinutes: 20,
			Tags:        []string{"Vegan", "Quick"},
		},
		{
			Name:        "Tomato Basil Soup",
			Ingredients: []string{"Tomato Sauce", "Garlic", "Olive Oil"},
			TimeMinutes: 40,
			Tags:        []string{"Vegan"},
		},
		{
			Name:        "Vegan Pesto Pasta",
			Ingredients: []string{"Pasta", "Garlic", "Olive Oil"},
			TimeMinutes: 30,
			Tags:        []string{"Vegan"},
		},
		{
			Name:        "Chicken Alfredo",
			Ingredients: []string{"Chicken", "Pasta", "Cheese", "Garlic"},
			TimeMinutes: 35,
			Tags:        []string{"High-Protein"},
		},
	}
	for i := range recipes {
		if err := db.Create(&recipes[i]).Error; err != nil {
			return fmt.Errorf("failed to seed recipe: %w", err)
		}
	}

	chefs := []gormModels.ChefModel{
		{
			Name:      "Mario",
			Expertise: []string{"italian", "pastas"},
			Workload:  "Medium",
		},
		{
			Name:      "Gordon",
			Expertise: []string{"grilling", "meats"},
			Workload:  "Low",
		},
		{
			Name:      "Alice",
			Expertise: []string{"baking", "vegan dishes"},
			Workload:  "Low",
		},
	}
	for i := range chefs {
		if err := db.Create(&chefs[i]).Error; err != nil {
			return fmt.Errorf("failed to seed chef: %w", err)
		}
	}

	orders := []gormModels.OrderModel{
		{
			ID:            "ORD-1001",
			CustomerEmail: "regular@example.com",
			Date:          time.Date(2025, time.July, 14, 18, 30, 0, 0, time.UTC),
			Items: gormModels.ItemSlice{
				{MealName: "Chicken Alfredo", Quantity: 2, UnitPrice: 12.50, TotalPrice: 25.00},
				{MealName: "Veggie Stir Fry", Quantity: 1, UnitPrice: 9.00, TotalPrice: 9.00},
			},
			TotalPrice: 34.00,
			Status:     "Paid",
		},
		{
			ID:            "ORD-1002",
			CustomerEmail: "vegan@example.com",
			Date:          time.Date(2025, time.August, 2, 12, 0, 0, 0, time.UTC),
			Items: gormModels.ItemSlice{
				{MealName: "Vegan Pesto Pasta", Quantity: 1, UnitPrice: 11.00, TotalPrice: 11.00},
			},
			TotalPrice: 11.00,
			Status:     "Preparing",
		},
		{
			ID:            "ORD-1003",
			CustomerEmail: "regular@example.com",
			Date:          time.Date(2025, time.August, 20, 19, 15, 0, 0, time.UTC),
			Items: gormModels.ItemSlice{
				{MealName: "Tomato Basil Soup", Quantity: 3, UnitPrice: 6.50, TotalPrice: 19.50},
			},
			TotalPrice: 19.50,
			Status:     "Delivered",
		},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
	}

	suppliers := []gormModels.SupplierModel{
		{
			ID:           "SUP-1",
			Name:         "FreshFarms",
			ContactEmail: "orders@freshfarms.example.com",
			ItemPrices: gormModels.PriceMap{
				"Broccoli":         1.10,
				"Chicken":          4.20,
				"Zucchini Noodles": 2.90,
			},
		},
		{
			ID:           "SUP-2",
			Name:         "PantryCo",
			ContactEmail: "sales@pantryco.example.com",
			ItemPrices: gormModels.PriceMap{
				"Pasta":        1.80,
				"Olive Oil":    0.60,
				"Almond Flour": 2.20,
			},
		},
	}
	for i := range suppliers {
		if err := db.Create(&suppliers[i]).Error; err != nil {
			return fmt.Errorf("failed to seed supplier: %w", err)
		}
	}

	links := []gormModels.SupplierLinkModel{
		{IngredientName: "Chicken", SupplierID: "SUP-1", DefaultReorderQty: 20},
		{IngredientName: "Pasta", SupplierID: "SUP-2", DefaultReorderQty: 30},
	}
	for i := range links {
		if err := db.Create(&links[i]).Error; err != nil {
			return fmt.Errorf("failed to seed supplier link: %w", err)
		}
	}

	return nil
}
