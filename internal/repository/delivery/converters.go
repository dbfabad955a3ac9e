package delivery

import "meddelivery/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:          d.ID,
		OrderID:     d.OrderID,
		RequestID:   d.RequestID,
		DriverID:    d.DriverID,
		PharmacyID:  d.PharmacyID,
		Status:      entities.DeliveryStatusType(d.Status),
		PickedUpAt:  d.PickedUpAt,
		DeliveredAt: d.DeliveredAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
