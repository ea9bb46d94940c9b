package delivery

import "errors"

var (
	ErrNotFound          = errors.New("delivery: not found")
	ErrInvalidInput      = errors.New("delivery: invalid input")
	ErrInvalidQuantity   = errors.New("delivery: quantity must be positive")
	ErrMixedShops        = errors.New("delivery: all items must belong to one shop")
	ErrBelowMinimumPrice = errors.New("delivery: order total is below the shop minimum")
)
