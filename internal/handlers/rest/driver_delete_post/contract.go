//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_delete_post_test
package driver_delete_post

import (
	"context"

	"meddelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ArchiveDriver(ctx context.Context, id int64) error
}
