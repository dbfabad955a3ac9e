package request

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"meddelivery/internal/entities"
	"meddelivery/internal/transition"
)

// Service - пациентский поток доставки (DeliveryRequest): создание с
// выдачей трек-кода, статусы подготовки, публичный трекинг по коду.
// Назначением водителя владеет координатор, сюда оно не заходит.
type Service struct {
	repository Repository
	history    HistoryRepository
	codes      CodeGenerator
	notifier   Notifier
	txManager  TxManager
}

func New(
	repository Repository,
	history HistoryRepository,
	codes CodeGenerator,
	notifier Notifier,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		history:    history,
		codes:      codes,
		notifier:   notifier,
		txManager:  txManager,
	}
}

// CreateRequest выдает трек-код один раз при создании. Коллизия кода
// ловится уникальным индексом и лечится единственной перегенерацией.
func (s *Service) CreateRequest(ctx context.Context, requestCreate entities.RequestCreate) (*entities.DeliveryRequest, error) {
	if err := isValidCreate(requestCreate); err != nil {
		return nil, err
	}

	var created *entities.DeliveryRequest
	attempt := func(ctx context.Context) error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			request, err := s.repository.Create(ctx, requestCreate, s.codes.Generate())
			if err != nil {
				return fmt.Errorf("create delivery request: %w", err)
			}

			err = s.history.Append(ctx, entities.StatusEntry{
				Kind:      entities.KindRequest,
				EntityID:  request.ID,
				Status:    request.Status.String(),
				UpdatedBy: requestCreate.PatientID,
			})
			if err != nil {
				return fmt.Errorf("append history: %w", err)
			}

			created = request
			return nil
		})
	}

	err := attempt(ctx)
	if errors.Is(err, ErrTrackingCodeTaken) {
		err = attempt(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.notify(ctx, created.PatientID, created.ID, created.Status.String())
	return created, nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (*entities.DeliveryRequest, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRequestID
	}

	request, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery request: %w", err)
	}

	return request, nil
}

// SetStatus - статусы подготовки и отмена. Переходы в assigned, on_the_way
// и delivered сюда не заходят: ими владеет координатор назначения, который
// завершает доставку и освобождает водителя той же транзакцией.
func (s *Service) SetStatus(ctx context.Context, id int64, target entities.RequestStatusType, actor entities.Actor, notes string) (*entities.DeliveryRequest, error) {
	if !isValidID(id) {
		return nil, ErrInvalidRequestID
	}
	if !isValidNotes(notes) {
		return nil, ErrInvalidNotes
	}
	if target == entities.RequestAssigned {
		return nil, fmt.Errorf("assignment goes through the coordinator: %w", ErrForbidden)
	}
	if target == entities.RequestOnTheWay || target == entities.RequestDelivered {
		return nil, fmt.Errorf("delivery progress goes through the coordinator: %w", ErrForbidden)
	}

	var updated *entities.DeliveryRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery request: %w", err)
		}

		err = transition.Validate(entities.KindRequest, request.Status.String(), target.String(), actor.Role)
		if err != nil {
			return err
		}
		if err := checkOwnership(request, actor); err != nil {
			return err
		}

		ok, err := s.repository.UpdateStatus(ctx, id, request.Status, target)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if !ok {
			// статус сменили под нами между чтением и UPDATE
			return fmt.Errorf("delivery request %d status changed concurrently: %w", id, transition.ErrIllegalSourceState)
		}

		err = s.history.Append(ctx, entities.StatusEntry{
			Kind:      entities.KindRequest,
			EntityID:  id,
			Status:    target.String(),
			UpdatedBy: actor.ID,
			Notes:     notes,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		request.Status = target
		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, updated.PatientID, updated.ID, target.String())
	return updated, nil
}

// TrackByCode - публичная проекция без авторизации: статус, история, ETA.
func (s *Service) TrackByCode(ctx context.Context, code string) (*entities.TrackingProjection, error) {
	if !isValidCode(code) {
		return nil, ErrInvalidTrackingCode
	}

	request, err := s.repository.GetByTrackingCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery request by code: %w", err)
	}

	entries, err := s.history.ListByEntity(ctx, entities.KindRequest, request.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get status history: %w", err)
	}

	return &entities.TrackingProjection{
		TrackingCode:          request.TrackingCode,
		Status:                request.Status,
		EstimatedDeliveryTime: request.EstimatedDeliveryTime,
		History:               entries,
	}, nil
}

func checkOwnership(request *entities.DeliveryRequest, actor entities.Actor) error {
	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RolePharmacy:
		if actor.ID != request.PharmacyID {
			return fmt.Errorf("pharmacy %d does not own delivery request %d: %w", actor.ID, request.ID, ErrForbidden)
		}
		return nil
	case entities.RolePatient:
		if actor.ID != request.PatientID {
			return fmt.Errorf("patient %d does not own delivery request %d: %w", actor.ID, request.ID, ErrForbidden)
		}
		return nil
	case entities.RoleDispatcher:
		if request.DispatcherID == nil || *request.DispatcherID != actor.ID {
			return fmt.Errorf("delivery request %d is not assigned to dispatcher %d: %w", request.ID, actor.ID, ErrForbidden)
		}
		return nil
	default:
		return ErrForbidden
	}
}

func (s *Service) notify(ctx context.Context, recipientID, requestID int64, status string) {
	_ = s.notifier.Notify(ctx, recipientID, entities.NotifyDeliveryUpdate, map[string]string{
		"request_id": strconv.FormatInt(requestID, 10),
		"status":     status,
	})
}
