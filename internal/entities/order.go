package entities

import "time"

type Order struct {
	ID                 int64
	PatientID          int64
	PharmacyID         int64
	Items              []OrderItem
	DeliveryAddress    string
	PaymentMethod      string
	PaymentStatus      PaymentStatusType
	FulfillmentStatus  FulfillmentStatusType
	DeliveryStatus     OrderDeliveryStatusType
	ActualDeliveryTime *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderItem struct {
	ID       int64
	OrderID  int64
	Name     string
	Quantity int
	Price    float64
}

type FulfillmentStatusType string

const (
	FulfillmentPending   FulfillmentStatusType = "pending"
	FulfillmentConfirmed FulfillmentStatusType = "confirmed"
	FulfillmentPreparing FulfillmentStatusType = "preparing"
	FulfillmentReady     FulfillmentStatusType = "ready"
	FulfillmentDelivered FulfillmentStatusType = "delivered"
	FulfillmentCancelled FulfillmentStatusType = "cancelled"
)

func (s FulfillmentStatusType) String() string {
	return string(s)
}

func (s FulfillmentStatusType) IsTerminal() bool {
	return s == FulfillmentDelivered || s == FulfillmentCancelled
}

type OrderDeliveryStatusType string

const (
	OrderDeliveryPending   OrderDeliveryStatusType = "pending"
	OrderDeliveryAssigned  OrderDeliveryStatusType = "assigned"
	OrderDeliveryPickedUp  OrderDeliveryStatusType = "picked_up"
	OrderDeliveryInTransit OrderDeliveryStatusType = "in_transit"
	OrderDeliveryDelivered OrderDeliveryStatusType = "delivered"
)

func (s OrderDeliveryStatusType) String() string {
	return string(s)
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "pending"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentFailed   PaymentStatusType = "failed"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderCreate struct {
	PatientID       int64
	PharmacyID      int64
	Items           []OrderItem
	DeliveryAddress string
	PaymentMethod   string
}
