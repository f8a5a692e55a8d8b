package order

import "errors"

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrMissingField    = errors.New("required field is missing")
)
