package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"meddelivery/internal/entities"
	"meddelivery/internal/repository"
	requestservice "meddelivery/internal/service/request"
)

const requestColumns = `id, patient_id, pharmacy_id, dispatcher_id, status, tracking_code,
	delivery_fee, total_amount, estimated_delivery_time, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, requestCreate entities.RequestCreate, trackingCode string) (*entities.DeliveryRequest, error) {
	query := `
		INSERT INTO delivery_requests (patient_id, pharmacy_id, delivery_fee, total_amount, tracking_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + requestColumns

	var requestDB RequestDB
	err := r.querier.QueryRow(
		ctx,
		query,
		requestCreate.PatientID,
		requestCreate.PharmacyID,
		requestCreate.DeliveryFee,
		requestCreate.TotalAmount,
		trackingCode,
	).Scan(scanTargets(&requestDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, requestservice.ErrTrackingCodeTaken
		}
		return nil, fmt.Errorf("unexpected request repository create error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM delivery_requests WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByTrackingCode(ctx context.Context, code string) (*entities.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM delivery_requests WHERE tracking_code = $1`
	return r.getOne(ctx, query, code)
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to entities.RequestStatusType) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected request repository update status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ClaimForAssignment атомарно переводит ready -> assigned и закрепляет
// диспетчера. false - заявка не ready либо уже разобрана.
func (r *Repository) ClaimForAssignment(ctx context.Context, id, dispatcherID int64, eta time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = 'assigned',
			dispatcher_id = $2,
			estimated_delivery_time = $3,
			updated_at = NOW()
		WHERE id = $1
			AND status = 'ready'
			AND dispatcher_id IS NULL
	`

	result, err := r.querier.Exec(ctx, query, id, dispatcherID, eta)
	if err != nil {
		return false, fmt.Errorf("unexpected request repository claim error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ResetAssignment возвращает заявку в пул после отмены доставки:
// снова ready, без диспетчера и ETA.
func (r *Repository) ResetAssignment(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = 'ready',
			dispatcher_id = NULL,
			estimated_delivery_time = NULL,
			updated_at = NOW()
		WHERE id = $1 AND status IN ('assigned', 'on_the_way')
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected request repository reset assignment error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.DeliveryRequest, error) {
	var requestDB RequestDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(scanTargets(&requestDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, requestservice.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected request repository get error: %w", err)
	}
	return ToDomain(&requestDB), nil
}

func scanTargets(r *RequestDB) []interface{} {
	return []interface{}{
		&r.ID,
		&r.PatientID,
		&r.PharmacyID,
		&r.DispatcherID,
		&r.Status,
		&r.TrackingCode,
		&r.DeliveryFee,
		&r.TotalAmount,
		&r.EstimatedDeliveryTime,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}
