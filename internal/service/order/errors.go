package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidItems          = errors.New("invalid order items")
	ErrInvalidNotes          = errors.New("notes exceed maximum length")
	ErrUndefinedStatus       = errors.New("undefined payment status")

	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("actor may not modify this order")
)
