package request

import "time"

type RequestDB struct {
	ID                    int64
	PatientID             int64
	PharmacyID            int64
	DispatcherID          *int64
	Status                string
	TrackingCode          string
	DeliveryFee           float64
	TotalAmount           float64
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
