package entities

import "time"

type Driver struct {
	ID             int64
	Name           string
	Phone          string
	IsAvailable    bool
	AvailableSince *time.Time
	State          DriverStateType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DriverStateType - жизненный цикл записи водителя (не путать с
// IsAvailable, которым владеет координатор назначения).
type DriverStateType string

const (
	DriverActive   DriverStateType = "active"
	DriverArchived DriverStateType = "archived"
)

func (s DriverStateType) String() string {
	return string(s)
}

type DriverModify struct {
	ID    *int64
	Name  *string
	Phone *string
}
