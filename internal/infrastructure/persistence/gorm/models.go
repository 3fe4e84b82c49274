// Package gorm provides GORM model definitions and repository
// implementations for the relational store.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// IngredientModel is the GORM model for catalog ingredients.
type IngredientModel struct {
	Name         string      `gorm:"type:varchar(255);primaryKey"`
	Price        float64     `gorm:"not null"`
	Tags         StringSlice `gorm:"type:json"`
	Alternatives StringSlice `gorm:"type:json"`
	Stock        int         `gorm:"default:0"`
	Unit         string      `gorm:"type:varchar(50);default:'unit'"`
	ReorderLevel int         `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CustomerModel is the GORM model for dietary profiles.
type CustomerModel struct {
	Email       string      `gorm:"type:varchar(255);primaryKey"`
	Preferences StringSlice `gorm:"type:json"`
	Allergies   StringSlice `gorm:"type:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeModel is the GORM model for catalog recipes.
type RecipeModel struct {
	Name        string      `gorm:"type:varchar(255);primaryKey"`
	Ingredients StringSlice `gorm:"type:json"`
	TimeMinutes int         `gorm:"column:time_minutes;default:0"`
	Tags        StringSlice `gorm:"type:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChefModel is the GORM model for kitchen staff.
type ChefModel struct {
	Name          string      `gorm:"type:varchar(255);primaryKey"`
	Expertise     StringSlice `gorm:"type:json"`
	Workload      string      `gorm:"type:varchar(20);default:'Low'"`
	Tasks         TaskSlice   `gorm:"type:json"`
	Notifications StringSlice `gorm:"type:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskRecord is the JSON shape of one kitchen task.
type TaskRecord struct {
	ID           string `json:"id"`
	MealName     string `json:"meal_name"`
	AssignedChef string `json:"assigned_chef"`
	Status       string `json:"status"`
	DueTime      string `json:"due_time"`
}

// OrderModel is the GORM model for past orders.
type OrderModel struct {
	ID            string    `gorm:"type:varchar(64);primaryKey"`
	CustomerEmail string    `gorm:"type:varchar(255);index;not null"`
	Date          time.Time `gorm:"index"`
	Items         ItemSlice `gorm:"type:json"`
	TotalPrice    float64   `gorm:"default:0"`
	Status        string    `gorm:"type:varchar(20);index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ItemRecord is the JSON shape of one order line.
type ItemRecord struct {
	MealName   string  `json:"meal_name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// SupplierModel is the GORM model for vendors.
type SupplierModel struct {
	ID           string   `gorm:"type:varchar(64);primaryKey"`
	Name         string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	ContactEmail string   `gorm:"type:varchar(255)"`
	ItemPrices   PriceMap `gorm:"type:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SupplierLinkModel ties an ingredient to its default restocking supplier.
type SupplierLinkModel struct {
	IngredientName    string `gorm:"type:varchar(255);primaryKey"`
	SupplierID        string `gorm:"type:varchar(64);not null;index"`
	DefaultReorderQty int    `gorm:"default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StringSlice stores a string slice as JSON.
type StringSlice []string

// Scan implements the sql.Scanner interface.
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface.
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// TaskSlice stores kitchen tasks as JSON.
type TaskSlice []TaskRecord

// Scan implements the sql.Scanner interface.
func (t *TaskSlice) Scan(value interface{}) error {
	if value == nil {
		*t = TaskSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into TaskSlice", value)
	}
}

// Value implements the driver.Valuer interface.
func (t TaskSlice) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "[]", nil
	}
	return json.Marshal(t)
}

// ItemSlice stores order lines as JSON.
type ItemSlice []ItemRecord

// Scan implements the sql.Scanner interface.
func (i *ItemSlice) Scan(value interface{}) error {
	if value == nil {
		*i = ItemSlice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into ItemSlice", value)
	}
}

// Value implements the driver.Valuer interface.
func (i ItemSlice) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

// PriceMap stores per-ingredient supplier quotes as JSON.
type PriceMap map[string]float64

// Scan implements the sql.Scanner interface.
func (p *PriceMap) Scan(value interface{}) error {
	if value == nil {
		*p = PriceMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into PriceMap", value)
	}
}

// Value implements the driver.Valuer interface.
func (p PriceMap) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return json.Marshal(p)
}

// TableName methods for custom table names.
func (IngredientModel) TableName() string   { return "ingredients" }
func (CustomerModel) TableName() string     { return "customers" }
func (RecipeModel) TableName() string       { return "recipes" }
func (ChefModel) TableName() string         { return "chefs" }
func (OrderModel) TableName() string        { return "orders" }
func (SupplierModel) TableName() string     { return "suppliers" }
func (SupplierLinkModel) TableName() string { return "supplier_links" }
