package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"meddelivery/internal/entities"
	orderservice "meddelivery/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	query := `
		INSERT INTO orders (patient_id, pharmacy_id, delivery_address, payment_method)
		VALUES ($1, $2, $3, $4)
		RETURNING id, patient_id, pharmacy_id, delivery_address, payment_method,
			payment_status, fulfillment_status, delivery_status, actual_delivery_time,
			created_at, updated_at
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderCreate.PatientID,
		orderCreate.PharmacyID,
		orderCreate.DeliveryAddress,
		orderCreate.PaymentMethod,
	).Scan(
		&orderDB.ID,
		&orderDB.PatientID,
		&orderDB.PharmacyID,
		&orderDB.DeliveryAddress,
		&orderDB.PaymentMethod,
		&orderDB.PaymentStatus,
		&orderDB.FulfillmentStatus,
		&orderDB.DeliveryStatus,
		&orderDB.ActualDeliveryTime,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, name, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	items := make([]OrderItemDB, 0, len(orderCreate.Items))
	for _, item := range orderCreate.Items {
		itemDB := OrderItemDB{
			OrderID:  orderDB.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}

		err := r.querier.QueryRow(ctx, itemQuery, orderDB.ID, item.Name, item.Quantity, item.Price).
			Scan(&itemDB.ID)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
		items = append(items, itemDB)
	}

	return ToDomain(&orderDB, items), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT id, patient_id, pharmacy_id, delivery_address, payment_method,
			payment_status, fulfillment_status, delivery_status, actual_delivery_time,
			created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.PatientID,
		&orderDB.PharmacyID,
		&orderDB.DeliveryAddress,
		&orderDB.PaymentMethod,
		&orderDB.PaymentStatus,
		&orderDB.FulfillmentStatus,
		&orderDB.DeliveryStatus,
		&orderDB.ActualDeliveryTime,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items), nil
}

// UpdateFulfillmentStatus - условный апдейт с охраной на исходный статус:
// конкурентный писатель, успевший первым, оставит rowsAffected = 0.
func (r *Repository) UpdateFulfillmentStatus(ctx context.Context, id int64, from, to entities.FulfillmentStatusType) (bool, error) {
	query := `
		UPDATE orders
		SET fulfillment_status = $3,
			updated_at = NOW()
		WHERE id = $1 AND fulfillment_status = $2
	`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected order repository update fulfillment status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ClaimForAssignment атомарно захватывает заказ под назначение.
// false - заказ уже захвачен, отменен или еще не готов.
func (r *Repository) ClaimForAssignment(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE orders
		SET delivery_status = 'assigned',
			updated_at = NOW()
		WHERE id = $1
			AND delivery_status = 'pending'
			AND fulfillment_status = 'ready'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) UpdateDeliveryStatus(ctx context.Context, id int64, from, to entities.OrderDeliveryStatusType) (bool, error) {
	query := `
		UPDATE orders
		SET delivery_status = $3,
			updated_at = NOW()
		WHERE id = $1 AND delivery_status = $2
	`

	result, err := r.querier.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, fmt.Errorf("unexpected order repository update delivery status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// CompleteDelivery закрывает оба статусных поля и штампует фактическое
// время доставки одним видимым изменением.
func (r *Repository) CompleteDelivery(ctx context.Context, id int64, deliveredAt time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET delivery_status = 'delivered',
			fulfillment_status = 'delivered',
			actual_delivery_time = $2,
			updated_at = NOW()
		WHERE id = $1
			AND delivery_status IN ('assigned', 'picked_up', 'in_transit')
	`

	result, err := r.querier.Exec(ctx, query, id, deliveredAt)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository complete delivery error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ResetDeliveryStatus возвращает заказ в pending после отмены доставки.
func (r *Repository) ResetDeliveryStatus(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE orders
		SET delivery_status = 'pending',
			updated_at = NOW()
		WHERE id = $1 AND delivery_status != 'delivered'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository reset delivery status error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET payment_status = $2,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, patient_id, pharmacy_id, delivery_address, payment_method,
			payment_status, fulfillment_status, delivery_status, actual_delivery_time,
			created_at, updated_at
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).Scan(
		&orderDB.ID,
		&orderDB.PatientID,
		&orderDB.PharmacyID,
		&orderDB.DeliveryAddress,
		&orderDB.PaymentMethod,
		&orderDB.PaymentStatus,
		&orderDB.FulfillmentStatus,
		&orderDB.DeliveryStatus,
		&orderDB.ActualDeliveryTime,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update payment status error: %w", err)
	}

	return ToDomain(&orderDB, nil), nil
}

func (r *Repository) getItems(ctx context.Context, orderID int64) ([]OrderItemDB, error) {
	query := `
		SELECT id, order_id, name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	var items []OrderItemDB
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Quantity, &item.Price)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan item error: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository items rows error: %w", err)
	}

	return items, nil
}
