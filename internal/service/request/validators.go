package request

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

func isValidCreate(requestCreate entities.RequestCreate) error {
	if requestCreate.PatientID <= 0 || requestCreate.PharmacyID <= 0 {
		return ErrMissingRequiredFields
	}
	if requestCreate.DeliveryFee < 0 || requestCreate.TotalAmount < 0 {
		return ErrMissingRequiredFields
	}
	return nil
}

func isValidCode(code string) bool {
	return strings.TrimSpace(code) != ""
}
