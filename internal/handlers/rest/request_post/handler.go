package request_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"meddelivery/internal/entities"
	"meddelivery/internal/generated/dto"
	"meddelivery/internal/pkg/middlewares/auth"
	"meddelivery/internal/service/request"
	"meddelivery/pkg/logger"
)

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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if actor.Role != entities.RolePatient && actor.Role != entities.RoleAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var requestCreateDTO dto.DeliveryRequestCreate
	err := json.NewDecoder(r.Body).Decode(&requestCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestEntity, err := h.service.CreateRequest(r.Context(), entities.RequestCreate{
		PatientID:   actor.ID,
		PharmacyID:  requestCreateDTO.PharmacyID,
		DeliveryFee: requestCreateDTO.DeliveryFee,
		TotalAmount: requestCreateDTO.TotalAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, request.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, request.ErrTrackingCodeTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryRequest{
		ID:           requestEntity.ID,
		PatientID:    requestEntity.PatientID,
		PharmacyID:   requestEntity.PharmacyID,
		Status:       requestEntity.Status.String(),
		TrackingCode: requestEntity.TrackingCode,
		DeliveryFee:  requestEntity.DeliveryFee,
		TotalAmount:  requestEntity.TotalAmount,
		CreatedAt:    requestEntity.CreatedAt,
		UpdatedAt:    requestEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
