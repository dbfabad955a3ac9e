package request

import "meddelivery/internal/entities"

func ToDomain(r *RequestDB) *entities.DeliveryRequest {
	if r == nil {
		return nil
	}
	return &entities.DeliveryRequest{
		ID:                    r.ID,
		PatientID:             r.PatientID,
		PharmacyID:            r.PharmacyID,
		DispatcherID:          r.DispatcherID,
		Status:                entities.RequestStatusType(r.Status),
		TrackingCode:          r.TrackingCode,
		DeliveryFee:           r.DeliveryFee,
		TotalAmount:           r.TotalAmount,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}
