package order

import (
	"strings"

	"meddelivery/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidNotes(notes string) bool {
	return len(notes) <= entities.NotesMaxLen
}

func isValidCreate(orderCreate entities.OrderCreate) error {
	if orderCreate.PatientID <= 0 || orderCreate.PharmacyID <= 0 {
		return ErrMissingRequiredFields
	}
	if strings.TrimSpace(orderCreate.DeliveryAddress) == "" {
		return ErrMissingRequiredFields
	}
	if strings.TrimSpace(orderCreate.PaymentMethod) == "" {
		return ErrMissingRequiredFields
	}
	if len(orderCreate.Items) == 0 {
		return ErrInvalidItems
	}
	for _, item := range orderCreate.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.Price < 0 {
			return ErrInvalidItems
		}
	}
	return nil
}

func isValidPaymentStatus(status entities.PaymentStatusType) bool {
	switch status {
	case entities.PaymentPending, entities.PaymentPaid, entities.PaymentFailed, entities.PaymentRefunded:
		return true
	default:
		return false
	}
}
