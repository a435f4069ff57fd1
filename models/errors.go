package models

import "errors"

// Error kinds produced at the point of failure. Cart mutation services map these
// to user-facing messages instead of letting callers inspect error shapes.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrOutOfStock      = errors.New("not enough stock")
	ErrItemNotFound    = errors.New("item not found")
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrCartConflict    = errors.New("cart was modified concurrently")
	ErrEmailTaken      = errors.New("email already registered")
)
