package order

import "errors"

var (
	ErrBlankIdentifier = errors.New("order id and customer email cannot be blank")
	ErrNotFound        = errors.New("order not found")
	ErrNotAuthorized   = errors.New("customer is not authorized for this order")
	ErrNotCompleted    = errors.New("order is not yet completed or paid")
)
