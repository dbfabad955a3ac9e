//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"meddelivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	UpdateFulfillmentStatus(ctx context.Context, id int64, from, to entities.FulfillmentStatusType) (bool, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatusType) (*entities.Order, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, entry entities.StatusEntry) error
	ListByEntity(ctx context.Context, kind entities.EntityKind, entityID int64) ([]entities.StatusEntry, error)
}

// DeliveryService - координатор назначения; нужен админской отмене,
// чтобы снять активную доставку и вернуть водителя в пул.
type DeliveryService interface {
	CancelActiveByOrderID(ctx context.Context, orderID int64, actor entities.Actor, at time.Time) error
}

type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind entities.NotificationKind, payload map[string]string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
