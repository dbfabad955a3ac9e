package assignment

import "meddelivery/internal/entities"

func isValidID(id int64) bool {
	return id > 0
}

func isValidNotes(notes string) bool {
	return len(notes) <= entities.NotesMaxLen
}
