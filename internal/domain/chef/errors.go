package chef

import "errors"

var (
	ErrBlankName = errors.New("chef name cannot be blank")
	ErrNotFound  = errors.New("chef not found")
)
