// Package diet contains the pure dietary compatibility rules shared by meal
// finalization and alternative suggestion. There is exactly one decision
// path; callers only choose how to word the outcome.
package diet

import (
	"strings"

	"github.com/healthyplate/v1/internal/domain/ingredient"
)

// Preference names recognized by the rules. Matching is case-sensitive.
const (
	PreferenceVegan = "Vegan"
	PreferenceKeto  = "Keto"
)

// Tag names with rule semantics.
const (
	TagVegan    = "vegan"
	TagNonVegan = "non_vegan"
	TagLowCarb  = "low_carb"
	TagHighCarb = "high_carb"
)

// Violation identifies the first rule an ingredient failed.
type Violation int

const (
	ViolationNone Violation = iota
	// ViolationVegan: customer prefers Vegan and the ingredient is not vegan-tagged.
	ViolationVegan
	// ViolationCarb: customer prefers Keto and the ingredient conflicts with the
	// carb rule table.
	ViolationCarb
	// ViolationAllergy: the ingredient's name or tags match an allergy token.
	ViolationAllergy
)

// carbRule restricts a category of ingredients for a preference. An
// ingredient conflicts when it carries the conflict tag, or when its name
// matches the restricted name without carrying the replacement tag.
// Exemplars are named substitutes excused from the rule and offered as
// replacements by the suggestion engine.
type carbRule struct {
	preference     string
	conflictTag    string
	restrictedName string
	replacementTag string
	exemplars      map[string]struct{}
}

// ketoRule is the only carb rule in the current vocabulary. Additional
// exemplar substitutes go in the exemplars set; no control flow changes.
var ketoRule = carbRule{
	preference:     PreferenceKeto,
	conflictTag:    TagHighCarb,
	restrictedName: "Pasta",
	replacementTag: TagLowCarb,
	exemplars: map[string]struct{}{
		"Zucchini Noodles": {},
	},
}

// conflictsWith reports whether the ingredient violates the rule.
func (r carbRule) conflictsWith(ing *ingredient.Ingredient) bool {
	if r.isExemplar(ing.Name()) {
		return false
	}
	if ing.HasTag(r.conflictTag) {
		return true
	}
	return strings.EqualFold(ing.Name(), r.restrictedName) && !ing.HasTag(r.replacementTag)
}

// restrictedWithoutReplacement reports whether the ingredient is the rule's
// restricted category lacking the replacement tag, with no exemplar escape.
// The suggestion engine uses it to detect originals worth replacing.
func (r carbRule) restrictedWithoutReplacement(ing *ingredient.Ingredient) bool {
	return strings.EqualFold(ing.Name(), r.restrictedName) && !ing.HasTag(r.replacementTag)
}

func (r carbRule) isExemplar(name string) bool {
	_, ok := r.exemplars[name]
	return ok
}

// Check applies the compatibility rules in order and returns the first
// violation. A nil ingredient never passes. Empty preference and allergy
// lists satisfy their rules vacuously.
func Check(ing *ingredient.Ingredient, preferences, allergies []string) Violation {
	if ing == nil {
		return ViolationVegan
	}
	if contains(preferences, PreferenceVegan) && !ing.HasTag(TagVegan) {
		return ViolationVegan
	}
	if contains(preferences, ketoRule.preference) && ketoRule.conflictsWith(ing) {
		return ViolationCarb
	}
	for _, allergy := range allergies {
		allergy = strings.TrimSpace(allergy)
		if allergy == "" {
			continue
		}
		if strings.Contains(strings.ToLower(ing.Name()), strings.ToLower(allergy)) || ing.HasTagFold(allergy) {
			return ViolationAllergy
		}
	}
	return ViolationNone
}

// Compatible reports whether the ingredient may appear in a meal for a
// customer with the given preferences and allergies.
func Compatible(ing *ingredient.Ingredient, preferences, allergies []string) bool {
	return Check(ing, preferences, allergies) == ViolationNone
}

// KetoReplacement reports whether candidate is an approved substitute for
// original under the carb rule table: original is the restricted category
// without the replacement tag, candidate carries the replacement tag and is
// a named exemplar.
func KetoReplacement(original, candidate *ingredient.Ingredient) bool {
	if original == nil || candidate == nil {
		return false
	}
	return ketoRule.restrictedWithoutReplacement(original) &&
		candidate.HasTag(ketoRule.replacementTag) &&
		ketoRule.isExemplar(candidate.Name())
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
