package entities

import "time"

// DeliveryRequest - пациентский поток доставки. Живет параллельно с Order,
// но со своим единым статусом и публичным трек-кодом.
type DeliveryRequest struct {
	ID                    int64
	PatientID             int64
	PharmacyID            int64
	DispatcherID          *int64
	Status                RequestStatusType
	TrackingCode          string
	DeliveryFee           float64
	TotalAmount           float64
	EstimatedDeliveryTime *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type RequestStatusType string

const (
	RequestPending   RequestStatusType = "pending"
	RequestConfirmed RequestStatusType = "confirmed"
	RequestPreparing RequestStatusType = "preparing"
	RequestReady     RequestStatusType = "ready"
	RequestAssigned  RequestStatusType = "assigned"
	RequestOnTheWay  RequestStatusType = "on_the_way"
	RequestDelivered RequestStatusType = "delivered"
	RequestCancelled RequestStatusType = "cancelled"
)

func (s RequestStatusType) String() string {
	return string(s)
}

func (s RequestStatusType) IsTerminal() bool {
	return s == RequestDelivered || s == RequestCancelled
}

type RequestCreate struct {
	PatientID   int64
	PharmacyID  int64
	DeliveryFee float64
	TotalAmount float64
}

// TrackingProjection - публичная read-only проекция для трекинга по коду.
type TrackingProjection struct {
	TrackingCode          string
	Status                RequestStatusType
	EstimatedDeliveryTime *time.Time
	History               []StatusEntry
}
