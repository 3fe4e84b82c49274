package supplier

import "errors"

var (
	ErrBlankIdentifier = errors.New("supplier id and name cannot be blank")
	ErrNotFound        = errors.New("supplier not found")
	ErrNoQuotedPrice   = errors.New("supplier has no quoted price for this ingredient")
	ErrNoLink          = errors.New("no supplier link for this ingredient")
)
