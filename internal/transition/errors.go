package transition

import "errors"

var (
	ErrUnknownStatus      = errors.New("unknown status")
	ErrIllegalSourceState = errors.New("illegal source state")
	ErrRoleNotPermitted   = errors.New("role not permitted")
)
