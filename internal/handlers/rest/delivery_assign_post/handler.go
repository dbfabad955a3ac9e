package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"meddelivery/internal/entities"
	"meddelivery/internal/generated/dto"
	"meddelivery/internal/pkg/middlewares/auth"
	"meddelivery/internal/service/assignment"
	"meddelivery/internal/service/driver"
	"meddelivery/internal/service/order"
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
	if actor.Role != entities.RoleDispatcher && actor.Role != entities.RoleAdmin {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// тело опционально: без driver_id водитель выбирается из пула по FIFO
	var assignDTO dto.AssignRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.AssignOrder(r.Context(), id, actor.ID, assignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrNotReady),
			errors.Is(err, assignment.ErrAlreadyAssigned),
			errors.Is(err, assignment.ErrDriverUnavailable),
			errors.Is(err, driver.ErrNoAvailableDrivers):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignResponse{
		DeliveryID:            assignmentEntity.DeliveryID,
		DriverID:              assignmentEntity.DriverID,
		OrderID:               assignmentEntity.OrderID,
		AssignedAt:            assignmentEntity.AssignedAt,
		EstimatedDeliveryTime: assignmentEntity.EstimatedDeliveryTime,
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
