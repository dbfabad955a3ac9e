package driver

import "time"

type DriverDB struct {
	ID             int64
	Name           string
	Phone          string
	IsAvailable    bool
	AvailableSince *time.Time
	State          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DriverModifyDB struct {
	ID    *int64
	Name  *string
	Phone *string
}
