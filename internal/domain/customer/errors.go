package customer

import "errors"

var (
	ErrBlankEmail = errors.New("customer email cannot be blank")
	ErrNotFound   = errors.New("customer not found")
)
