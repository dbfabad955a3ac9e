package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"meddelivery/internal/entities"
	"meddelivery/internal/generated/dto"
	"meddelivery/internal/pkg/middlewares/auth"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// пациент и аптека видят только свои заказы
	switch actor.Role {
	case entities.RolePatient:
		if orderEntity.PatientID != actor.ID {
			w.WriteHeader(http.StatusForbidden)
			return
		}
	case entities.RolePharmacy:
		if orderEntity.PharmacyID != actor.ID {
			w.WriteHeader(http.StatusForbidden)
			return
		}
	}

	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	orderDTO := dto.Order{
		ID:                 orderEntity.ID,
		PatientID:          orderEntity.PatientID,
		PharmacyID:         orderEntity.PharmacyID,
		Items:              items,
		DeliveryAddress:    orderEntity.DeliveryAddress,
		PaymentMethod:      orderEntity.PaymentMethod,
		PaymentStatus:      orderEntity.PaymentStatus.String(),
		FulfillmentStatus:  orderEntity.FulfillmentStatus.String(),
		DeliveryStatus:     orderEntity.DeliveryStatus.String(),
		ActualDeliveryTime: orderEntity.ActualDeliveryTime,
		CreatedAt:          orderEntity.CreatedAt,
		UpdatedAt:          orderEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
