package recipe

import "errors"

var (
	ErrBlankName    = errors.New("recipe name cannot be blank")
	ErrNegativeTime = errors.New("recipe preparation time cannot be negative")
	ErrNotFound     = errors.New("recipe not found")
)
