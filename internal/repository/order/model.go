package order

import "time"

type OrderDB struct {
	ID                 int64
	PatientID          int64
	PharmacyID         int64
	DeliveryAddress    string
	PaymentMethod      string
	PaymentStatus      string
	FulfillmentStatus  string
	DeliveryStatus     string
	ActualDeliveryTime *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderItemDB struct {
	ID       int64
	OrderID  int64
	Name     string
	Quantity int
	Price    float64
}
