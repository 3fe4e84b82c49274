package diet

import (
	"strings"

	"github.com/healthyplate/v1/internal/domain/ingredient"
)

// typeTags is the fixed category vocabulary for substitution grouping.
var typeTags = []string{
	"protein",
	"vegetable",
	"grain",
	"sauce_base",
	"main_course",
	"topping",
	"cheese_flavor",
	"flour",
}

// namePairs are substring pairs that mark two ingredients as interchangeable
// even without a shared category tag.
var namePairs = [][2]string{
	{"Cheese", "Yeast"},
	{"Pasta", "Noodles"},
	{"Flour", "Flour"},
}

// TypeSimilar reports whether two ingredients belong to interchangeable
// categories: they share a tag from the category vocabulary, or their names
// match one of the known substitution pairs.
func TypeSimilar(a, b *ingredient.Ingredient) bool {
	if a == nil || b == nil {
		return false
	}
	for _, tag := range typeTags {
		if a.HasTag(tag) && b.HasTag(tag) {
			return true
		}
	}
	for _, pair := range namePairs {
		if strings.Contains(a.Name(), pair[0]) && strings.Contains(b.Name(), pair[1]) {
			return true
		}
	}
	return false
}
