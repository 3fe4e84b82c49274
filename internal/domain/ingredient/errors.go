package ingredient

import "errors"

// Domain errors for ingredient operations

var (
	ErrBlankName     = errors.New("ingredient name cannot be blank")
	ErrNegativePrice = errors.New("ingredient price cannot be negative")
	ErrNotFound      = errors.New("ingredient not found")
	ErrAlreadyExists = errors.New("ingredient with this name already exists")
)
