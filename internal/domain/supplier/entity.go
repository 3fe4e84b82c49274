// Package supplier contains the supplier and purchase-order domain model.
package supplier

import (
	"sort"
	"strings"
	"time"
)

// Supplier is a vendor keyed by ID, quoting per-ingredient prices.
type Supplier struct {
	id           string
	name         string
	contactEmail string
	itemPrices   map[string]float64
}

// New creates a supplier with an empty price list.
func New(id, name, contactEmail string) (*Supplier, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
		return nil, ErrBlankIdentifier
	}
	return &Supplier{
		id:           strings.TrimSpace(id),
		name:         strings.TrimSpace(name),
		contactEmail: contactEmail,
		itemPrices:   make(map[string]float64),
	}, nil
}

// ID returns the supplier's unique ID.
func (s *Supplier) ID() string { return s.id }

// Name returns the supplier's display name.
func (s *Supplier) Name() string { return s.name }

// ContactEmail returns the supplier's contact address.
func (s *Supplier) ContactEmail() string { return s.contactEmail }

// SetItemPrice quotes a price for an ingredient.
func (s *Supplier) SetItemPrice(ingredientName string, price float64) {
	s.itemPrices[ingredientName] = price
}

// PriceFor returns the quoted price for an ingredient, if any.
func (s *Supplier) PriceFor(ingredientName string) (float64, bool) {
	price, ok := s.itemPrices[ingredientName]
	return price, ok
}

// PricedIngredients returns the names of every quoted ingredient, sorted.
func (s *Supplier) PricedIngredients() []string {
	out := make([]string, 0, len(s.itemPrices))
	for name := range s.itemPrices {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Link ties an ingredient to its default supplier for automatic reordering.
type Link struct {
	IngredientName    string
	SupplierID        string
	DefaultReorderQty int
}

// PurchaseOrder is a generated order for restocking one ingredient.
type PurchaseOrder struct {
	ID             string
	IngredientName string
	SupplierName   string
	Quantity       int
	Unit           string
	PricePerUnit   float64
	TotalCost      float64
	OrderDate      time.Time
	Status         string
	Automatic      bool
}

// NewPurchaseOrder creates a purchase order in the Generated state, dated now.
func NewPurchaseOrder(id, ingredientName, supplierName string, quantity int, unit string, pricePerUnit float64, automatic bool) PurchaseOrder {
	return PurchaseOrder{
		ID:             id,
		IngredientName: ingredientName,
		SupplierName:   supplierName,
		Quantity:       quantity,
		Unit:           unit,
		PricePerUnit:   pricePerUnit,
		TotalCost:      float64(quantity) * pricePerUnit,
		OrderDate:      time.Now(),
		Status:         "Generated",
		Automatic:      automatic,
	}
}
