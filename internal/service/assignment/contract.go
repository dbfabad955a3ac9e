//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"meddelivery/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	ClaimForAssignment(ctx context.Context, id int64) (bool, error)
	UpdateDeliveryStatus(ctx context.Context, id int64, from, to entities.OrderDeliveryStatusType) (bool, error)
	CompleteDelivery(ctx context.Context, id int64, deliveredAt time.Time) (bool, error)
	ResetDeliveryStatus(ctx context.Context, id int64) (bool, error)
}

type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error)
	ClaimForAssignment(ctx context.Context, id, dispatcherID int64, eta time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.RequestStatusType) (bool, error)
	ResetAssignment(ctx context.Context, id int64) (bool, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, deliveryEntity *entities.Delivery) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.DeliveryStatusType, at time.Time) (bool, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	ClaimByID(ctx context.Context, id int64) (bool, error)
	ClaimNextAvailable(ctx context.Context) (*entities.Driver, error)
	Release(ctx context.Context, id int64, availableAt time.Time) (bool, error)
	ReleaseStranded(ctx context.Context) (int64, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry entities.StatusEntry) error
}

type ETAFactory interface {
	EstimatedDeliveryTime(baseTime time.Time) time.Time
}

type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind entities.NotificationKind, payload map[string]string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
