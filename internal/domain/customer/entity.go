// Package customer contains the dietary profile domain model.
package customer

import "strings"

// Customer is a dietary profile keyed by email. Customers are created on
// first reference and never deleted.
type Customer struct {
	email       string
	preferences []string
	allergies   []string
}

// New creates a customer profile with no preferences or allergies.
func New(email string) (*Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrBlankEmail
	}
	return &Customer{email: strings.TrimSpace(email)}, nil
}

// Email returns the customer's unique email.
func (c *Customer) Email() string { return c.email }

// Preferences returns the dietary preferences in insertion order.
func (c *Customer) Preferences() []string {
	out := make([]string, len(c.preferences))
	copy(out, c.preferences)
	return out
}

// Allergies returns the allergy list in insertion order.
func (c *Customer) Allergies() []string {
	out := make([]string, len(c.allergies))
	copy(out, c.allergies)
	return out
}

// AddPreference appends a dietary preference. Blank values and exact
// duplicates are ignored; matching is case-sensitive.
func (c *Customer) AddPreference(preference string) {
	c.preferences = appendUnique(c.preferences, preference)
}

// AddAllergy appends an allergy token. Blank values and exact duplicates
// are ignored.
func (c *Customer) AddAllergy(allergy string) {
	c.allergies = appendUnique(c.allergies, allergy)
}

// Prefers reports whether the exact preference string is present.
func (c *Customer) Prefers(preference string) bool {
	for _, p := range c.preferences {
		if p == preference {
			return true
		}
	}
	return false
}

func appendUnique(values []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return values
	}
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
