package domain

import "errors"

var (
	// Cart errors
	ErrInvalidQuantity = errors.New("cart quantity cannot be negative")
	ErrEmptyLineID     = errors.New("cart line product id cannot be empty")

	// Storage errors
	ErrKeyNotFound = errors.New("storage key not found")
)
