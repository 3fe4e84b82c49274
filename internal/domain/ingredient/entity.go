// Package ingredient contains the catalog-side domain model for ingredients.
package ingredient

import (
	"strings"
)

// Ingredient represents a catalog ingredient. The name is the unique key;
// two ingredients are the same ingredient iff their names are equal.
type Ingredient struct {
	name         string
	price        float64
	tags         map[string]struct{}
	alternatives []string
	stock        int
	unit         string
	reorderLevel int
}

// New creates an ingredient with validation. Tags are stored as a set,
// alternatives keep their given order.
func New(name string, price float64, tags []string, alternatives []string) (*Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}

	ing := &Ingredient{
		name:  strings.TrimSpace(name),
		price: price,
		tags:  make(map[string]struct{}),
		unit:  "unit",
	}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			ing.tags[tag] = struct{}{}
		}
	}
	for _, alt := range alternatives {
		ing.AddAlternative(alt)
	}
	return ing, nil
}

// NewStocked creates an ingredient carrying inventory data.
func NewStocked(name string, price float64, tags, alternatives []string, stock int, unit string, reorderLevel int) (*Ingredient, error) {
	ing, err := New(name, price, tags, alternatives)
	if err != nil {
		return nil, err
	}
	if stock < 0 {
		stock = 0
	}
	ing.stock = stock
	if strings.TrimSpace(unit) != "" {
		ing.unit = strings.TrimSpace(unit)
	}
	ing.reorderLevel = reorderLevel
	return ing, nil
}

// Name returns the ingredient's unique name.
func (i *Ingredient) Name() string { return i.name }

// Price returns the current catalog price.
func (i *Ingredient) Price() float64 { return i.price }

// SetPrice updates the catalog price.
func (i *Ingredient) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	i.price = price
	return nil
}

// HasTag reports whether the ingredient carries the exact tag.
func (i *Ingredient) HasTag(tag string) bool {
	_, ok := i.tags[tag]
	return ok
}

// HasTagFold reports whether any tag equals the given token case-insensitively.
func (i *Ingredient) HasTagFold(token string) bool {
	for tag := range i.tags {
		if strings.EqualFold(tag, token) {
			return true
		}
	}
	return false
}

// Tags returns a copy of the tag set.
func (i *Ingredient) Tags() []string {
	tags := make([]string, 0, len(i.tags))
	for tag := range i.tags {
		tags = append(tags, tag)
	}
	return tags
}

// Tagged reports whether the ingredient has any tags at all.
func (i *Ingredient) Tagged() bool { return len(i.tags) > 0 }

// AddTag adds a tag to the set.
func (i *Ingredient) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag != "" {
		i.tags[tag] = struct{}{}
	}
}

// Alternatives returns a copy of the suggested-alternative names, in order.
// Entries may reference ingredients not (yet) present in the catalog.
func (i *Ingredient) Alternatives() []string {
	out := make([]string, len(i.alternatives))
	copy(out, i.alternatives)
	return out
}

// HasAlternative reports whether name is in the explicit alternatives list.
func (i *Ingredient) HasAlternative(name string) bool {
	for _, alt := range i.alternatives {
		if alt == name {
			return true
		}
	}
	return false
}

// AddAlternative appends a suggested alternative, ignoring blanks and duplicates.
func (i *Ingredient) AddAlternative(name string) {
	name = strings.TrimSpace(name)
	if name == "" || i.HasAlternative(name) {
		return
	}
	i.alternatives = append(i.alternatives, name)
}

// Stock returns the current stock level.
func (i *Ingredient) Stock() int { return i.stock }

// SetStock replaces the stock level, flooring at zero.
func (i *Ingredient) SetStock(stock int) {
	if stock < 0 {
		stock = 0
	}
	i.stock = stock
}

// DecreaseStock removes quantity units of stock, clamping at zero.
// Non-positive quantities are ignored.
func (i *Ingredient) DecreaseStock(quantity int) {
	if quantity <= 0 {
		return
	}
	i.stock -= quantity
	if i.stock < 0 {
		i.stock = 0
	}
}

// IncreaseStock adds quantity units of stock. Non-positive quantities are ignored.
func (i *Ingredient) IncreaseStock(quantity int) {
	if quantity <= 0 {
		return
	}
	i.stock += quantity
}

// Unit returns the stock-keeping unit.
func (i *Ingredient) Unit() string { return i.unit }

// SetUnit replaces the stock-keeping unit.
func (i *Ingredient) SetUnit(unit string) {
	if strings.TrimSpace(unit) != "" {
		i.unit = strings.TrimSpace(unit)
	}
}

// ReorderLevel returns the restocking threshold.
func (i *Ingredient) ReorderLevel() int { return i.reorderLevel }

// SetReorderLevel replaces the restocking threshold.
func (i *Ingredient) SetReorderLevel(level int) { i.reorderLevel = level }

// NeedsRestocking reports whether stock has fallen below the reorder level.
func (i *Ingredient) NeedsRestocking() bool { return i.stock < i.reorderLevel }

// Snapshot returns a detached copy of the ingredient. Meal requests hold
// snapshots so later catalog mutations cannot alter an in-progress request.
func (i *Ingredient) Snapshot() *Ingredient {
	clone := &Ingredient{
		name:         i.name,
		price:        i.price,
		tags:         make(map[string]struct{}, len(i.tags)),
		alternatives: make([]string, len(i.alternatives)),
		stock:        i.stock,
		unit:         i.unit,
		reorderLevel: i.reorderLevel,
	}
	for tag := range i.tags {
		clone.tags[tag] = struct{}{}
	}
	copy(clone.alternatives, i.alternatives)
	return clone
}
