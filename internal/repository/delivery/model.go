package delivery

import "time"

type DeliveryDB struct {
	ID          int64
	OrderID     *int64
	RequestID   *int64
	DriverID    int64
	PharmacyID  int64
	Status      string
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
