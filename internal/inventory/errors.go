package inventory

import "errors"

var (
	ErrMissingName  = errors.New("item name is required")
	ErrMissingUnit  = errors.New("unit is required")
	ErrItemNotFound = errors.New("inventory item not found")
)
