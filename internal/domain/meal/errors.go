package meal

import "errors"

var (
	ErrBlankInput    = errors.New("customer email and meal name cannot be blank")
	ErrNilIngredient = errors.New("cannot add a nil ingredient")
	ErrAlreadySealed = errors.New("meal request is already finalized")
)
