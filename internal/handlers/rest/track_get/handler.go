package track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"meddelivery/internal/generated/dto"
	"meddelivery/internal/service/request"
	"meddelivery/pkg/logger"
)

// Handler - публичный трекинг по коду, без авторизации.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	projection, err := h.service.TrackByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, request.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	history := make([]dto.StatusHistoryEntry, 0, len(projection.History))
	for _, entry := range projection.History {
		history = append(history, dto.StatusHistoryEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			UpdatedBy: entry.UpdatedBy,
			Notes:     entry.Notes,
		})
	}

	response := dto.TrackingResponse{
		TrackingCode:          projection.TrackingCode,
		Status:                projection.Status.String(),
		EstimatedDeliveryTime: projection.EstimatedDeliveryTime,
		History:               history,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
