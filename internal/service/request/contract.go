//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_test
package request

import (
	"context"

	"meddelivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, requestCreate entities.RequestCreate, trackingCode string) (*entities.DeliveryRequest, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error)
	GetByTrackingCode(ctx context.Context, code string) (*entities.DeliveryRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to entities.RequestStatusType) (bool, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry entities.StatusEntry) error
	ListByEntity(ctx context.Context, kind entities.EntityKind, entityID int64) ([]entities.StatusEntry, error)
}

type CodeGenerator interface {
	Generate() string
}

type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind entities.NotificationKind, payload map[string]string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
