package request

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRequestID      = errors.New("invalid delivery request id")
	ErrInvalidTrackingCode   = errors.New("invalid tracking code")
	ErrInvalidNotes          = errors.New("notes exceed maximum length")

	ErrRequestNotFound   = errors.New("delivery request not found")
	ErrTrackingCodeTaken = errors.New("tracking code already exists")
	ErrForbidden         = errors.New("actor may not modify this delivery request")
)
