package rate_limiter

import "meddelivery/pkg/logger"

// Limiter решает, пропускать ли запрос. Реализация - pkg/token_bucket.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
