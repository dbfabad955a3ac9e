package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"meddelivery/internal/entities"
	"meddelivery/internal/repository"
	driverservice "meddelivery/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, name, phone, is_available, available_since, state, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, name, phone string) (int64, error) {
	query := `
		INSERT INTO drivers (name, phone, is_available, available_since)
		VALUES ($1, $2, TRUE, NOW())
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query, name, phone).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driverservice.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&driverDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverservice.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

// GetAll возвращает только живые записи: единственный предикат "что считать
// живым" - state = 'active'.
func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := `
		SELECT ` + driverColumns + `
		FROM drivers
		WHERE state = 'active'
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository get all error: %w", err)
	}
	defer rows.Close()

	var drivers []entities.Driver
	for rows.Next() {
		var driverDB DriverDB
		if err := rows.Scan(scanTargets(&driverDB)...); err != nil {
			return nil, fmt.Errorf("unexpected driver repository scan error: %w", err)
		}
		drivers = append(drivers, *ToDomain(&driverDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository rows error: %w", err)
	}

	return drivers, nil
}

func (r *Repository) Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyModel.Name != nil {
		builder = builder.Set("name", driverModifyModel.Name)
	}
	if driverModifyModel.Phone != nil {
		builder = builder.Set("phone", driverModifyModel.Phone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyModel.ID}).
		Where(sq.Eq{"state": "active"}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	var driverDB DriverDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&driverDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverservice.ErrDriverNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, driverservice.ErrConflict
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

// Archive - мягкое удаление. Водителя с активной доставкой заархивировать
// нельзя: охрана на is_available.
func (r *Repository) Archive(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE drivers
		SET state = 'archived',
			updated_at = NOW()
		WHERE id = $1 AND state = 'active' AND is_available = TRUE
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository archive error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ClaimByID атомарно занимает конкретного водителя: проигравший из двух
// конкурентных претендентов получит rowsAffected = 0.
func (r *Repository) ClaimByID(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE drivers
		SET is_available = FALSE,
			available_since = NULL,
			updated_at = NOW()
		WHERE id = $1 AND state = 'active' AND is_available = TRUE
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository claim error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ClaimNextAvailable выбирает дольше всех ожидающего свободного водителя
// (FIFO по available_since) и занимает его тем же запросом. SKIP LOCKED,
// чтобы конкурентные назначения не вставали в очередь друг за другом.
func (r *Repository) ClaimNextAvailable(ctx context.Context) (*entities.Driver, error) {
	query := `
		UPDATE drivers
		SET is_available = FALSE,
			available_since = NULL,
			updated_at = NOW()
		WHERE id = (
			SELECT id
			FROM drivers
			WHERE state = 'active' AND is_available = TRUE
			ORDER BY available_since ASC, id ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + driverColumns

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query).Scan(scanTargets(&driverDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driverservice.ErrNoAvailableDrivers
		}
		return nil, fmt.Errorf("unexpected driver repository claim next error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

// Release возвращает водителя в пул: новый available_since ставит его
// в конец FIFO-очереди.
func (r *Repository) Release(ctx context.Context, id int64, availableAt time.Time) (bool, error) {
	query := `
		UPDATE drivers
		SET is_available = TRUE,
			available_since = $2,
			updated_at = NOW()
		WHERE id = $1 AND is_available = FALSE
	`

	result, err := r.querier.Exec(ctx, query, id, availableAt)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository release error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseStranded чинит расхождение инварианта "занят <=> есть активная
// доставка" после сбоев: возвращает в пул занятых водителей без активных
// доставок.
func (r *Repository) ReleaseStranded(ctx context.Context) (int64, error) {
	query := `
		UPDATE drivers
		SET is_available = TRUE,
			available_since = NOW(),
			updated_at = NOW()
		WHERE is_available = FALSE
			AND state = 'active'
			AND NOT EXISTS (
				SELECT 1
				FROM deliveries
				WHERE deliveries.driver_id = drivers.id
					AND deliveries.status NOT IN ('delivered', 'cancelled')
			)
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository release stranded error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanTargets(d *DriverDB) []interface{} {
	return []interface{}{
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.IsAvailable,
		&d.AvailableSince,
		&d.State,
		&d.CreatedAt,
		&d.UpdatedAt,
	}
}
