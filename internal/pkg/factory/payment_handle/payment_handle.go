package payment_handle

import (
	"context"
	"fmt"

	"meddelivery/internal/entities"
	"meddelivery/internal/service/order"
)

type ExecuteFn func(ctx context.Context, orderID int64) error

type OrderService interface {
	UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatusType) (*entities.Order, error)
}

// StatusHandlerFactory сопоставляет платежному событию действие над
// заказом. Платежный статус сквозной, но каждое событие должно дойти
// до заказа и до пациента.
type StatusHandlerFactory struct {
	orderService OrderService
}

func NewStatusHandlerFactory(orderService OrderService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderService: orderService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.PaymentStatusType) (ExecuteFn, error) {
	switch status {
	case entities.PaymentPaid:
		return f.paidHandler, nil
	case entities.PaymentFailed:
		return f.failedHandler, nil
	case entities.PaymentRefunded:
		return f.refundedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) paidHandler(ctx context.Context, orderID int64) error {
	_, err := f.orderService.UpdatePaymentStatus(ctx, orderID, entities.PaymentPaid)
	if err != nil {
		return fmt.Errorf("mark order %d paid: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, orderID int64) error {
	_, err := f.orderService.UpdatePaymentStatus(ctx, orderID, entities.PaymentFailed)
	if err != nil {
		return fmt.Errorf("mark order %d failed: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) refundedHandler(ctx context.Context, orderID int64) error {
	_, err := f.orderService.UpdatePaymentStatus(ctx, orderID, entities.PaymentRefunded)
	if err != nil {
		return fmt.Errorf("mark order %d refunded: %w", orderID, err)
	}
	return nil
}
