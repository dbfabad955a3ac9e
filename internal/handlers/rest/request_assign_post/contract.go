//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_assign_post_test
package request_assign_post

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
	AssignRequest(ctx context.Context, requestID, dispatcherID int64, driverID *int64) (*entities.Assignment, error)
}
