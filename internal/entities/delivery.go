package entities

import "time"

// Delivery создается только координатором назначения. Ровно одна активная
// (не delivered/cancelled) доставка на заказ и на водителя.
type Delivery struct {
	ID          int64
	OrderID     *int64
	RequestID   *int64
	DriverID    int64
	PharmacyID  int64
	Status      DeliveryStatusType
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d *Delivery) IsActive() bool {
	return !d.Status.IsTerminal()
}

type DeliveryStatusType string

const (
	DeliveryAssigned  DeliveryStatusType = "assigned"
	DeliveryPickedUp  DeliveryStatusType = "picked_up"
	DeliveryInTransit DeliveryStatusType = "in_transit"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// Assignment - результат успешного назначения, то что уходит наружу.
type Assignment struct {
	DeliveryID            int64
	DriverID              int64
	OrderID               *int64
	RequestID             *int64
	AssignedAt            time.Time
	EstimatedDeliveryTime time.Time
}
