package availability_reconcile

import (
	"context"
	"time"

	"meddelivery/pkg/logger"
)

type Service interface {
	ReleaseStrandedDrivers(ctx context.Context) (int64, error)
}

// AvailabilityReconcile возвращает в пул водителей, оставшихся занятыми
// без активной доставки (например после падения процесса между шагами).
type AvailabilityReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewAvailabilityReconcile(log logger.Logger, service Service, interval time.Duration) *AvailabilityReconcile {
	return &AvailabilityReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (a *AvailabilityReconcile) TTL() time.Duration {
	return a.interval
}

func (a *AvailabilityReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	rowsAffected, err := a.service.ReleaseStrandedDrivers(ctxWithTimeout)

	if rowsAffected > 0 {
		a.log.With(
			logger.NewField("released_drivers", rowsAffected),
		).Info("driver availability reconcile")
	}

	return err
}

func (a *AvailabilityReconcile) Info() string {
	return "driver availability reconcile"
}
