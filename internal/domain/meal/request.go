// Package meal contains the custom meal request aggregate: a staged
// selection of ingredient snapshots that is sealed exactly once.
package meal

import (
	"strings"

	"github.com/healthyplate/v1/internal/domain/ingredient"
)

// State tracks the request lifecycle. A request starts Building and moves
// to Sealed on finalization; there is no transition back.
type State int

const (
	StateBuilding State = iota
	StateSealed
)

// Meal tags derived at finalization. Exactly one of the two is set.
const (
	TagVegan    = "vegan"
	TagNonVegan = "non_vegan"
)

// Request is a custom meal under assembly for one customer session. It
// holds ingredient snapshots, so catalog changes after selection do not
// retroactively alter the request.
type Request struct {
	customerEmail string
	mealName      string
	state         State
	items         []*ingredient.Ingredient
	totalPrice    float64
	mealTags      map[string]struct{}
	successful    bool
	failureReason string
}

// NewRequest starts a fresh, empty meal request. Both identifiers must be
// non-blank.
func NewRequest(customerEmail, mealName string) (*Request, error) {
	if strings.TrimSpace(customerEmail) == "" || strings.TrimSpace(mealName) == "" {
		return nil, ErrBlankInput
	}
	return &Request{
		customerEmail: customerEmail,
		mealName:      mealName,
		mealTags:      make(map[string]struct{}),
	}, nil
}

// CustomerEmail returns the owning customer's email.
func (r *Request) CustomerEmail() string { return r.customerEmail }

// MealName returns the meal's display name.
func (r *Request) MealName() string { return r.mealName }

// State returns the lifecycle state.
func (r *Request) State() State { return r.state }

// Sealed reports whether the request has been finalized.
func (r *Request) Sealed() bool { return r.state == StateSealed }

// Items returns the selected ingredient snapshots in selection order.
// Duplicate selections are permitted and appear once per add.
func (r *Request) Items() []*ingredient.Ingredient {
	items := make([]*ingredient.Ingredient, len(r.items))
	copy(items, r.items)
	return items
}

// AddItem appends an ingredient snapshot to the selection. No compatibility
// check happens here; that is finalize-time work.
func (r *Request) AddItem(ing *ingredient.Ingredient) error {
	if r.state == StateSealed {
		return ErrAlreadySealed
	}
	if ing == nil {
		return ErrNilIngredient
	}
	r.items = append(r.items, ing.Snapshot())
	return nil
}

// TotalPrice returns the finalized total, zero until sealed successfully.
func (r *Request) TotalPrice() float64 { return r.totalPrice }

// MealTags returns the derived meal tags.
func (r *Request) MealTags() []string {
	tags := make([]string, 0, len(r.mealTags))
	for tag := range r.mealTags {
		tags = append(tags, tag)
	}
	return tags
}

// HasMealTag reports whether the derived tag set contains tag.
func (r *Request) HasMealTag(tag string) bool {
	_, ok := r.mealTags[tag]
	return ok
}

// Successful reports whether the request has been sealed successfully.
func (r *Request) Successful() bool { return r.successful }

// FailureReason returns the last recorded failure, empty after a
// successful seal.
func (r *Request) FailureReason() string { return r.failureReason }

// RecordFailure notes a recoverable failure without sealing the request;
// the caller may keep adding other ingredients.
func (r *Request) RecordFailure(reason string) error {
	if r.state == StateSealed {
		return ErrAlreadySealed
	}
	r.failureReason = reason
	r.successful = false
	return nil
}

// SealFailure finalizes the request unsuccessfully with a terminal reason.
func (r *Request) SealFailure(reason string) error {
	if r.state == StateSealed {
		return ErrAlreadySealed
	}
	r.state = StateSealed
	r.successful = false
	r.failureReason = reason
	return nil
}

// SealSuccess finalizes the request with the recomputed total and exactly
// one derived meal tag, clearing any earlier failure reason.
func (r *Request) SealSuccess(totalPrice float64, mealTag string) error {
	if r.state == StateSealed {
		return ErrAlreadySealed
	}
	r.state = StateSealed
	r.successful = true
	r.failureReason = ""
	r.totalPrice = totalPrice
	r.mealTags = map[string]struct{}{mealTag: {}}
	return nil
}
