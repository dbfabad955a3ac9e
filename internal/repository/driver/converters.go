package driver

import "meddelivery/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:             d.ID,
		Name:           d.Name,
		Phone:          d.Phone,
		IsAvailable:    d.IsAvailable,
		AvailableSince: d.AvailableSince,
		State:          entities.DriverStateType(d.State),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}
	return &DriverModifyDB{
		ID:    d.ID,
		Name:  d.Name,
		Phone: d.Phone,
	}
}
