package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"meddelivery/internal/entities"
	"meddelivery/internal/generated/dto"
	"meddelivery/internal/pkg/middlewares/auth"
	"meddelivery/internal/service/assignment"
	"meddelivery/internal/transition"
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

	var statusUpdateDTO dto.StatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntity, err := h.service.UpdateDeliveryStatus(
		r.Context(),
		id,
		entities.DeliveryStatusType(statusUpdateDTO.Status),
		actor,
		statusUpdateDTO.Notes,
	)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidDeliveryID),
			errors.Is(err, assignment.ErrInvalidNotes),
			errors.Is(err, transition.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrForbidden),
			errors.Is(err, transition.ErrRoleNotPermitted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, transition.ErrIllegalSourceState):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Delivery{
		ID:          deliveryEntity.ID,
		OrderID:     deliveryEntity.OrderID,
		RequestID:   deliveryEntity.RequestID,
		DriverID:    deliveryEntity.DriverID,
		PharmacyID:  deliveryEntity.PharmacyID,
		Status:      deliveryEntity.Status.String(),
		PickedUpAt:  deliveryEntity.PickedUpAt,
		DeliveredAt: deliveryEntity.DeliveredAt,
		CreatedAt:   deliveryEntity.CreatedAt,
		UpdatedAt:   deliveryEntity.UpdatedAt,
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
