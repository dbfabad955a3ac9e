package request_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestEntity, err := h.service.GetRequest(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrInvalidRequestID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, request.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if actor.Role == entities.RolePatient && requestEntity.PatientID != actor.ID {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	if actor.Role == entities.RolePharmacy && requestEntity.PharmacyID != actor.ID {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	requestDTO := dto.DeliveryRequest{
		ID:                    requestEntity.ID,
		PatientID:             requestEntity.PatientID,
		PharmacyID:            requestEntity.PharmacyID,
		DispatcherID:          requestEntity.DispatcherID,
		Status:                requestEntity.Status.String(),
		TrackingCode:          requestEntity.TrackingCode,
		DeliveryFee:           requestEntity.DeliveryFee,
		TotalAmount:           requestEntity.TotalAmount,
		EstimatedDeliveryTime: requestEntity.EstimatedDeliveryTime,
		CreatedAt:             requestEntity.CreatedAt,
		UpdatedAt:             requestEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(requestDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
