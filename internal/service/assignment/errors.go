package assignment

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidRequestID  = errors.New("invalid delivery request id")
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidDriverID   = errors.New("invalid driver id")
	ErrInvalidNotes      = errors.New("notes exceed maximum length")

	ErrNotReady          = errors.New("entity is not ready for assignment")
	ErrAlreadyAssigned   = errors.New("entity already has an active delivery")
	ErrDriverUnavailable = errors.New("driver is not available")
	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrForbidden         = errors.New("actor does not own this delivery")
)
