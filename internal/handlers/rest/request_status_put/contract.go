//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_status_put_test
package request_status_put

import (
	"context"

	"meddelivery/internal/entities"
	"meddelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetStatus(ctx context.Context, id int64, target entities.RequestStatusType, actor entities.Actor, notes string) (*entities.DeliveryRequest, error)
}
