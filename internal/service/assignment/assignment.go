package assignment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"meddelivery/internal/entities"
	"meddelivery/internal/transition"
)

// Assignment - координатор назначения. Единственный компонент, который
// трогает доступность водителей: занимает при назначении, освобождает на
// терминальном статусе доставки. Захват заказа, захват водителя и создание
// доставки идут одной сериализуемой транзакцией; условные UPDATE и
// частичные уникальные индексы гарантируют ровно одного победителя при
// конкурентных вызовах.
type Assignment struct {
	orders     OrderRepository
	requests   RequestRepository
	deliveries DeliveryRepository
	drivers    DriverRepository
	history    HistoryRepository
	etaFactory ETAFactory
	notifier   Notifier
	txManager  TxManager
}

func New(
	orders OrderRepository,
	requests RequestRepository,
	deliveries DeliveryRepository,
	drivers DriverRepository,
	history HistoryRepository,
	etaFactory ETAFactory,
	notifier Notifier,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		orders:     orders,
		requests:   requests,
		deliveries: deliveries,
		drivers:    drivers,
		history:    history,
		etaFactory: etaFactory,
		notifier:   notifier,
		txManager:  txManager,
	}
}

// AssignOrder назначает водителя на заказ. driverID == nil - выбор из пула
// по FIFO, иначе явный выбор диспетчера.
func (a *Assignment) AssignOrder(ctx context.Context, orderID, dispatcherID int64, driverID *int64) (*entities.Assignment, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		assignment entities.Assignment
		patientID  int64
		assignedID int64
	)

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := a.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		patientID = order.PatientID

		claimed, err := a.orders.ClaimForAssignment(ctx, orderID)
		if err != nil {
			return fmt.Errorf("claim order: %w", err)
		}
		if !claimed {
			return a.explainOrderClaimFailure(ctx, orderID)
		}

		driver, err := a.claimDriver(ctx, driverID)
		if err != nil {
			return err
		}

		delivery, err := a.deliveries.Create(ctx, &entities.Delivery{
			OrderID:    &orderID,
			DriverID:   driver.ID,
			PharmacyID: order.PharmacyID,
			Status:     entities.DeliveryAssigned,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		now := time.Now().UTC()
		if err := a.appendAssignmentHistory(ctx, entities.KindOrder, orderID, delivery.ID, dispatcherID); err != nil {
			return err
		}

		assignment = entities.Assignment{
			DeliveryID:            delivery.ID,
			DriverID:              driver.ID,
			OrderID:               &orderID,
			AssignedAt:            delivery.CreatedAt,
			EstimatedDeliveryTime: a.etaFactory.EstimatedDeliveryTime(now),
		}
		assignedID = driver.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notifyAssigned(ctx, assignedID, patientID, "order_id", *assignment.OrderID)
	return &assignment, nil
}

// AssignRequest - то же для пациентского потока доставки; захват заявки
// дополнительно закрепляет диспетчера и фиксирует ETA.
func (a *Assignment) AssignRequest(ctx context.Context, requestID, dispatcherID int64, driverID *int64) (*entities.Assignment, error) {
	if !isValidID(requestID) {
		return nil, ErrInvalidRequestID
	}

	var (
		assignment entities.Assignment
		patientID  int64
		assignedID int64
	)

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := a.requests.GetByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}
		patientID = request.PatientID

		eta := a.etaFactory.EstimatedDeliveryTime(time.Now().UTC())
		claimed, err := a.requests.ClaimForAssignment(ctx, requestID, dispatcherID, eta)
		if err != nil {
			return fmt.Errorf("claim delivery request: %w", err)
		}
		if !claimed {
			return a.explainRequestClaimFailure(ctx, requestID)
		}

		driver, err := a.claimDriver(ctx, driverID)
		if err != nil {
			return err
		}

		delivery, err := a.deliveries.Create(ctx, &entities.Delivery{
			RequestID:  &requestID,
			DriverID:   driver.ID,
			PharmacyID: request.PharmacyID,
			Status:     entities.DeliveryAssigned,
		})
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if err := a.appendAssignmentHistory(ctx, entities.KindRequest, requestID, delivery.ID, dispatcherID); err != nil {
			return err
		}

		assignment = entities.Assignment{
			DeliveryID:            delivery.ID,
			DriverID:              driver.ID,
			RequestID:             &requestID,
			AssignedAt:            delivery.CreatedAt,
			EstimatedDeliveryTime: eta,
		}
		assignedID = driver.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.notifyAssigned(ctx, assignedID, patientID, "request_id", *assignment.RequestID)
	return &assignment, nil
}

// UpdateDeliveryStatus - прогресс доставки водителем или диспетчером.
// Терминальный статус освобождает водителя и завершает родительский
// заказ/заявку в той же транзакции.
func (a *Assignment) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, target entities.DeliveryStatusType, actor entities.Actor, notes string) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidNotes(notes) {
		return nil, ErrInvalidNotes
	}

	var (
		updated   *entities.Delivery
		patientID int64
	)

	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := a.deliveries.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		err = transition.Validate(entities.KindDelivery, delivery.Status.String(), target.String(), actor.Role)
		if err != nil {
			return err
		}
		if actor.Role == entities.RoleDriver && actor.ID != delivery.DriverID {
			return fmt.Errorf("driver %d does not own delivery %d: %w", actor.ID, deliveryID, ErrForbidden)
		}
		if actor.Role == entities.RoleDispatcher {
			if err := a.checkDispatcherOwnership(ctx, delivery, actor); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		ok, err := a.deliveries.UpdateStatus(ctx, deliveryID, delivery.Status, target, now)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		if !ok {
			// статус сменили под нами между чтением и UPDATE
			return fmt.Errorf("delivery %d status changed concurrently: %w", deliveryID, transition.ErrIllegalSourceState)
		}

		err = a.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindDelivery,
			EntityID:  deliveryID,
			Status:    target.String(),
			UpdatedBy: actor.ID,
			Notes:     notes,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if delivery.OrderID != nil {
			patientID, err = a.mirrorToOrder(ctx, *delivery.OrderID, delivery.Status, target, actor.ID, now)
			if err != nil {
				return err
			}
		}
		if delivery.RequestID != nil {
			patientID, err = a.mirrorToRequest(ctx, *delivery.RequestID, target, actor.ID)
			if err != nil {
				return err
			}
		}

		if target.IsTerminal() {
			_, err = a.drivers.Release(ctx, delivery.DriverID, now)
			if err != nil {
				return fmt.Errorf("release driver: %w", err)
			}
		}

		delivery.Status = target
		updated = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}

	if patientID != 0 {
		_ = a.notifier.Notify(ctx, patientID, entities.NotifyDeliveryUpdate, map[string]string{
			"delivery_id": strconv.FormatInt(deliveryID, 10),
			"status":      target.String(),
		})
	}
	return updated, nil
}

// checkDispatcherOwnership пускает диспетчера только к доставкам его
// заявок. Доставки заказов диспетчера не хранят, по ним ходит водитель.
func (a *Assignment) checkDispatcherOwnership(ctx context.Context, delivery *entities.Delivery, actor entities.Actor) error {
	if delivery.RequestID == nil {
		return fmt.Errorf("delivery %d is not dispatched by request: %w", delivery.ID, ErrForbidden)
	}

	request, err := a.requests.GetByID(ctx, *delivery.RequestID)
	if err != nil {
		return fmt.Errorf("get request: %w", err)
	}
	if request.DispatcherID == nil || *request.DispatcherID != actor.ID {
		return fmt.Errorf("dispatcher %d does not own delivery %d: %w", actor.ID, delivery.ID, ErrForbidden)
	}
	return nil
}

// CancelActiveByOrderID снимает активную доставку заказа и возвращает
// водителя в пул. Отсутствие активной доставки не ошибка: отменять нечего.
func (a *Assignment) CancelActiveByOrderID(ctx context.Context, orderID int64, actor entities.Actor, at time.Time) error {
	return a.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := a.deliveries.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			if errors.Is(err, ErrDeliveryNotFound) {
				return nil
			}
			return fmt.Errorf("get active delivery: %w", err)
		}

		ok, err := a.deliveries.UpdateStatus(ctx, delivery.ID, delivery.Status, entities.DeliveryCancelled, at)
		if err != nil {
			return fmt.Errorf("cancel delivery: %w", err)
		}
		if !ok {
			return fmt.Errorf("delivery %d status changed concurrently: %w", delivery.ID, transition.ErrIllegalSourceState)
		}

		err = a.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindDelivery,
			EntityID:  delivery.ID,
			Status:    entities.DeliveryCancelled.String(),
			UpdatedBy: actor.ID,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		_, err = a.drivers.Release(ctx, delivery.DriverID, at)
		if err != nil {
			return fmt.Errorf("release driver: %w", err)
		}
		return nil
	})
}

// ReleaseStrandedDrivers возвращает в пул водителей, зависших занятыми
// без активной доставки. Запускается фоновой задачей.
func (a *Assignment) ReleaseStrandedDrivers(ctx context.Context) (int64, error) {
	released, err := a.drivers.ReleaseStranded(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("reconcile timed out: %w", err)
		}
		return 0, fmt.Errorf("reconcile: %w", err)
	}

	return released, nil
}

func (a *Assignment) claimDriver(ctx context.Context, driverID *int64) (*entities.Driver, error) {
	if driverID == nil {
		driver, err := a.drivers.ClaimNextAvailable(ctx)
		if err != nil {
			return nil, fmt.Errorf("claim next available driver: %w", err)
		}
		return driver, nil
	}

	if !isValidID(*driverID) {
		return nil, ErrInvalidDriverID
	}

	driver, err := a.drivers.GetByID(ctx, *driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	claimed, err := a.drivers.ClaimByID(ctx, driver.ID)
	if err != nil {
		return nil, fmt.Errorf("claim driver: %w", err)
	}
	if !claimed {
		return nil, fmt.Errorf("driver %d: %w", driver.ID, ErrDriverUnavailable)
	}

	return driver, nil
}

// explainOrderClaimFailure: условный захват не прошел, перечитываем и
// различаем "не ready" и "уже назначен".
func (a *Assignment) explainOrderClaimFailure(ctx context.Context, orderID int64) error {
	order, err := a.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order after failed claim: %w", err)
	}

	if order.FulfillmentStatus != entities.FulfillmentReady {
		return fmt.Errorf("order %d is %s: %w", orderID, order.FulfillmentStatus, ErrNotReady)
	}
	return fmt.Errorf("order %d: %w", orderID, ErrAlreadyAssigned)
}

func (a *Assignment) explainRequestClaimFailure(ctx context.Context, requestID int64) error {
	request, err := a.requests.GetByID(ctx, requestID)
	if err != nil {
		return fmt.Errorf("get delivery request after failed claim: %w", err)
	}

	// захват заявки меняет тот же статус, проигравший гонку видит assigned
	if request.Status == entities.RequestAssigned {
		return fmt.Errorf("delivery request %d: %w", requestID, ErrAlreadyAssigned)
	}
	if request.Status != entities.RequestReady {
		return fmt.Errorf("delivery request %d is %s: %w", requestID, request.Status, ErrNotReady)
	}
	return fmt.Errorf("delivery request %d: %w", requestID, ErrAlreadyAssigned)
}

func (a *Assignment) appendAssignmentHistory(ctx context.Context, kind entities.EntityKind, entityID, deliveryID, dispatcherID int64) error {
	err := a.history.Append(ctx, entities.StatusEntry{
		Kind:      kind,
		EntityID:  entityID,
		Status:    transition.StatusAssigned,
		UpdatedBy: dispatcherID,
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	err = a.history.Append(ctx, entities.StatusEntry{
		Kind:      entities.KindDelivery,
		EntityID:  deliveryID,
		Status:    transition.StatusAssigned,
		UpdatedBy: dispatcherID,
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// mirrorToOrder проецирует статус доставки на параллельное поле
// delivery_status заказа. delivered завершает заказ и ставит фактическое
// время доставки, cancelled возвращает заказ в пул назначения.
func (a *Assignment) mirrorToOrder(ctx context.Context, orderID int64, from entities.DeliveryStatusType, target entities.DeliveryStatusType, actorID int64, now time.Time) (int64, error) {
	var (
		ok  bool
		err error
	)

	switch target {
	case entities.DeliveryPickedUp:
		ok, err = a.orders.UpdateDeliveryStatus(ctx, orderID, entities.OrderDeliveryAssigned, entities.OrderDeliveryPickedUp)
	case entities.DeliveryInTransit:
		ok, err = a.orders.UpdateDeliveryStatus(ctx, orderID, entities.OrderDeliveryPickedUp, entities.OrderDeliveryInTransit)
	case entities.DeliveryDelivered:
		ok, err = a.orders.CompleteDelivery(ctx, orderID, now)
	case entities.DeliveryCancelled:
		ok, err = a.orders.ResetDeliveryStatus(ctx, orderID)
	default:
		return 0, fmt.Errorf("delivery status %q: %w", target, transition.ErrUnknownStatus)
	}
	if err != nil {
		return 0, fmt.Errorf("mirror delivery status to order: %w", err)
	}
	if !ok {
		return 0, fmt.Errorf("order %d delivery status out of sync: %w", orderID, transition.ErrIllegalSourceState)
	}

	if target != entities.DeliveryCancelled {
		err = a.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindOrder,
			EntityID:  orderID,
			Status:    target.String(),
			UpdatedBy: actorID,
		})
		if err != nil {
			return 0, fmt.Errorf("append history: %w", err)
		}
	}

	order, err := a.orders.GetByID(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("get order: %w", err)
	}
	return order.PatientID, nil
}

// mirrorToRequest: у заявки единый статус, picked_up и in_transit
// схлопываются в on_the_way.
func (a *Assignment) mirrorToRequest(ctx context.Context, requestID int64, target entities.DeliveryStatusType, actorID int64) (int64, error) {
	var mirrored string

	switch target {
	case entities.DeliveryPickedUp, entities.DeliveryInTransit:
		ok, err := a.requests.UpdateStatus(ctx, requestID, entities.RequestAssigned, entities.RequestOnTheWay)
		if err != nil {
			return 0, fmt.Errorf("mirror delivery status to request: %w", err)
		}
		// in_transit после picked_up: заявка уже on_the_way, дубль не пишем
		if ok {
			mirrored = entities.RequestOnTheWay.String()
		}
	case entities.DeliveryDelivered:
		ok, err := a.requests.UpdateStatus(ctx, requestID, entities.RequestOnTheWay, entities.RequestDelivered)
		if err != nil {
			return 0, fmt.Errorf("mirror delivery status to request: %w", err)
		}
		if !ok {
			ok, err = a.requests.UpdateStatus(ctx, requestID, entities.RequestAssigned, entities.RequestDelivered)
			if err != nil {
				return 0, fmt.Errorf("mirror delivery status to request: %w", err)
			}
		}
		if !ok {
			return 0, fmt.Errorf("delivery request %d status out of sync: %w", requestID, transition.ErrIllegalSourceState)
		}
		mirrored = entities.RequestDelivered.String()
	case entities.DeliveryCancelled:
		_, err := a.requests.ResetAssignment(ctx, requestID)
		if err != nil {
			return 0, fmt.Errorf("reset request assignment: %w", err)
		}
	default:
		return 0, fmt.Errorf("delivery status %q: %w", target, transition.ErrUnknownStatus)
	}

	if mirrored != "" {
		err := a.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindRequest,
			EntityID:  requestID,
			Status:    mirrored,
			UpdatedBy: actorID,
		})
		if err != nil {
			return 0, fmt.Errorf("append history: %w", err)
		}
	}

	request, err := a.requests.GetByID(ctx, requestID)
	if err != nil {
		return 0, fmt.Errorf("get delivery request: %w", err)
	}
	return request.PatientID, nil
}

func (a *Assignment) notifyAssigned(ctx context.Context, driverID, patientID int64, idKey string, entityID int64) {
	payload := map[string]string{
		idKey:    strconv.FormatInt(entityID, 10),
		"status": transition.StatusAssigned,
	}

	_ = a.notifier.Notify(ctx, driverID, entities.NotifyDeliveryUpdate, payload)
	_ = a.notifier.Notify(ctx, patientID, entities.NotifyDeliveryUpdate, payload)
}
