package order

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"meddelivery/internal/entities"
	"meddelivery/internal/transition"
)

// Service ведет жизненный цикл заказа: создание пациентом, статусы
// подготовки аптекой, отмена, платежные события. Каждая смена статуса
// коммитится вместе с записью истории, уведомление уходит после коммита.
type Service struct {
	repository      Repository
	history         HistoryRepository
	deliveryService DeliveryService
	notifier        Notifier
	txManager       TxManager
}

func New(
	repository Repository,
	history HistoryRepository,
	deliveryService DeliveryService,
	notifier Notifier,
	txManager TxManager,
) *Service {
	return &Service{
		repository:      repository,
		history:         history,
		deliveryService: deliveryService,
		notifier:        notifier,
		txManager:       txManager,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := isValidCreate(orderCreate); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.Create(ctx, orderCreate)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		err = s.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindOrder,
			EntityID:  order.ID,
			Status:    order.FulfillmentStatus.String(),
			UpdatedBy: orderCreate.PatientID,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, created.PatientID, entities.NotifyOrderStatus, created.ID, created.FulfillmentStatus.String())
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// SetFulfillmentStatus - переходы подготовки (confirmed/preparing/ready и
// отмена аптекой). Условный UPDATE со старого статуса: проигравший
// конкурентную смену получает illegal-source-state, а не затирает ее.
func (s *Service) SetFulfillmentStatus(ctx context.Context, id int64, target entities.FulfillmentStatusType, actor entities.Actor, notes string) (*entities.Order, error) {
	return s.applyFulfillment(ctx, id, target, actor, notes)
}

// Cancel - пациент до подтверждения, админ из любого нетерминального
// статуса. Отмена снимает и активную доставку заказа.
func (s *Service) Cancel(ctx context.Context, id int64, actor entities.Actor, notes string) (*entities.Order, error) {
	return s.applyFulfillment(ctx, id, entities.FulfillmentCancelled, actor, notes)
}

// UpdatePaymentStatus - платежный статус сквозной, приходит событием из
// платежного сервиса и не участвует в машине статусов.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, status entities.PaymentStatusType) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if !isValidPaymentStatus(status) {
		return nil, fmt.Errorf("payment status %q: %w", status, ErrUndefinedStatus)
	}

	order, err := s.repository.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	s.notify(ctx, order.PatientID, entities.NotifyOrderStatus, order.ID, "payment_"+status.String())
	return order, nil
}

func (s *Service) applyFulfillment(ctx context.Context, id int64, target entities.FulfillmentStatusType, actor entities.Actor, notes string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}
	if !isValidNotes(notes) {
		return nil, ErrInvalidNotes
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		err = transition.Validate(entities.KindOrder, order.FulfillmentStatus.String(), target.String(), actor.Role)
		if err != nil {
			return err
		}
		if err := checkFulfillmentOwnership(order, actor); err != nil {
			return err
		}

		ok, err := s.repository.UpdateFulfillmentStatus(ctx, id, order.FulfillmentStatus, target)
		if err != nil {
			return fmt.Errorf("update fulfillment status: %w", err)
		}
		if !ok {
			// статус сменили под нами между чтением и UPDATE
			return fmt.Errorf("order %d fulfillment status changed concurrently: %w", id, transition.ErrIllegalSourceState)
		}

		if target == entities.FulfillmentCancelled {
			// отмена снимает и активную доставку, иначе водитель останется
			// занят несуществующим заказом; без доставки вызов - no-op
			err = s.deliveryService.CancelActiveByOrderID(ctx, id, actor, time.Now().UTC())
			if err != nil {
				return fmt.Errorf("cancel active delivery: %w", err)
			}
		}

		err = s.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindOrder,
			EntityID:  id,
			Status:    target.String(),
			UpdatedBy: actor.ID,
			Notes:     notes,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		order.FulfillmentStatus = target
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, updated.PatientID, entities.NotifyOrderStatus, updated.ID, target.String())
	return updated, nil
}

func checkFulfillmentOwnership(order *entities.Order, actor entities.Actor) error {
	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RolePharmacy:
		if actor.ID != order.PharmacyID {
			return fmt.Errorf("pharmacy %d does not own order %d: %w", actor.ID, order.ID, ErrForbidden)
		}
		return nil
	case entities.RolePatient:
		if actor.ID != order.PatientID {
			return fmt.Errorf("patient %d does not own order %d: %w", actor.ID, order.ID, ErrForbidden)
		}
		return nil
	default:
		return ErrForbidden
	}
}

// notify best-effort: падение эмиттера не откатывает уже закоммиченный
// переход, гейтвей сам логирует ошибку.
func (s *Service) notify(ctx context.Context, recipientID int64, kind entities.NotificationKind, orderID int64, status string) {
	_ = s.notifier.Notify(ctx, recipientID, kind, map[string]string{
		"order_id": strconv.FormatInt(orderID, 10),
		"status":   status,
	})
}
