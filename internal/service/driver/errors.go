package driver

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")

	ErrDriverNotFound     = errors.New("driver not found")
	ErrDriverBusy         = errors.New("driver has an active delivery")
	ErrNoAvailableDrivers = errors.New("no available drivers")
	ErrConflict           = errors.New("resource already exists")
)
