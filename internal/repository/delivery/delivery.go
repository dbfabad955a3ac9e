package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"meddelivery/internal/entities"
	"meddelivery/internal/repository"
	assignmentservice "meddelivery/internal/service/assignment"
)

const deliveryColumns = `id, order_id, request_id, driver_id, pharmacy_id, status,
	picked_up_at, delivered_at, created_at, updated_at`

// Имена частичных уникальных индексов из миграций: по ним различаем,
// какой инвариант нарушила конкурентная вставка.
const (
	constraintActiveOrder   = "uq_deliveries_active_order"
	constraintActiveRequest = "uq_deliveries_active_request"
	constraintActiveDriver  = "uq_deliveries_active_driver"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryEntity *entities.Delivery) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, request_id, driver_id, pharmacy_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + deliveryColumns

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		deliveryEntity.OrderID,
		deliveryEntity.RequestID,
		deliveryEntity.DriverID,
		deliveryEntity.PharmacyID,
		deliveryEntity.Status.String(),
	).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			switch repository.ConstraintName(err) {
			case constraintActiveDriver:
				return nil, assignmentservice.ErrDriverUnavailable
			case constraintActiveOrder, constraintActiveRequest:
				return nil, assignmentservice.ErrAlreadyAssigned
			default:
				return nil, assignmentservice.ErrAlreadyAssigned
			}
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignmentservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1 AND status NOT IN ('delivered', 'cancelled')
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&deliveryDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignmentservice.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get active error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// UpdateStatus - условный апдейт с охраной на исходный статус; штампы
// picked_up_at / delivered_at выставляются тем же запросом.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.DeliveryStatusType, at time.Time) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = $3,
			picked_up_at = CASE WHEN $3 = 'picked_up' THEN $4 ELSE picked_up_at END,
			delivered_at = CASE WHEN $3 = 'delivered' THEN $4 ELSE delivered_at END,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String(), at)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) CountActiveByDriverID(ctx context.Context, driverID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM deliveries
		WHERE driver_id = $1 AND status NOT IN ('delivered', 'cancelled')
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository count active error: %w", err)
	}

	return count, nil
}

func scanTargets(d *DeliveryDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.OrderID,
		&d.RequestID,
		&d.DriverID,
		&d.PharmacyID,
		&d.Status,
		&d.PickedUpAt,
		&d.DeliveredAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}
