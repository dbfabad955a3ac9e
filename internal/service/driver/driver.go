package driver

import (
	"context"
	"fmt"

	"meddelivery/internal/entities"
)

// Driver - CRUD по водителям. Флагом is_available владеет координатор
// назначения, этот сервис его никогда не трогает.
type Driver struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Driver {
	return &Driver{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, name, phone string) (int64, error) {
	if name == "" || phone == "" {
		return 0, ErrMissingRequiredFields
	}
	if !isValidName(name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(phone) {
		return 0, ErrInvalidPhone
	}

	id, err := s.repository.Create(ctx, name, phone)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if !isValidID(id) {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	if driver.State != entities.DriverActive {
		return nil, ErrDriverNotFound
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || !isValidID(*driverModify.ID) {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil && driverModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

// ArchiveDriver - мягкое удаление. Водитель с активной доставкой
// не архивируется, сначала доставка должна завершиться.
func (s *Driver) ArchiveDriver(ctx context.Context, id int64) error {
	if !isValidID(id) {
		return ErrInvalidDriverID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		archived, err := s.repository.Archive(ctx, id)
		if err != nil {
			return fmt.Errorf("archive driver: %w", err)
		}
		if archived {
			return nil
		}

		// условный UPDATE не прошел: разбираемся почему
		driver, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("archive driver: %w", err)
		}
		if driver.State != entities.DriverActive {
			return ErrDriverNotFound
		}
		if !driver.IsAvailable {
			return ErrDriverBusy
		}
		return fmt.Errorf("archive driver %d: %w", id, ErrConflict)
	})
}
