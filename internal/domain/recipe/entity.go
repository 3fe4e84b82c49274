// Package recipe contains the immutable recipe catalog model.
package recipe

import "strings"

// Recipe is a catalog recipe keyed by name. Recipes are immutable once
// loaded.
type Recipe struct {
	name        string
	ingredients map[string]struct{}
	timeMinutes int
	tags        map[string]struct{}
}

// New creates a recipe. Blank ingredient and tag entries are dropped.
func New(name string, ingredients []string, timeMinutes int, tags []string) (*Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	if timeMinutes < 0 {
		return nil, ErrNegativeTime
	}

	r := &Recipe{
		name:        strings.TrimSpace(name),
		ingredients: make(map[string]struct{}),
		timeMinutes: timeMinutes,
		tags:        make(map[string]struct{}),
	}
	for _, ing := range ingredients {
		if ing = strings.TrimSpace(ing); ing != "" {
			r.ingredients[ing] = struct{}{}
		}
	}
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			r.tags[tag] = struct{}{}
		}
	}
	return r, nil
}

// Name returns the recipe's unique name.
func (r *Recipe) Name() string { return r.name }

// Ingredients returns a copy of the required-ingredient set.
func (r *Recipe) Ingredients() []string {
	out := make([]string, 0, len(r.ingredients))
	for ing := range r.ingredients {
		out = append(out, ing)
	}
	return out
}

// Requires reports whether name is a required ingredient.
func (r *Recipe) Requires(name string) bool {
	_, ok := r.ingredients[name]
	return ok
}

// IngredientCount returns the number of required ingredients.
func (r *Recipe) IngredientCount() int { return len(r.ingredients) }

// TimeMinutes returns the preparation time in minutes.
func (r *Recipe) TimeMinutes() int { return r.timeMinutes }

// Tags returns a copy of the tag set.
func (r *Recipe) Tags() []string {
	out := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		out = append(out, tag)
	}
	return out
}

// HasTag reports whether the recipe carries the exact tag.
func (r *Recipe) HasTag(tag string) bool {
	_, ok := r.tags[tag]
	return ok
}
