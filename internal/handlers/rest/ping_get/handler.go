package ping_get

import (
	"encoding/json"
	"net/http"

	"meddelivery/internal/generated/dto"
	"meddelivery/pkg/logger"
)

// Handler отвечает на GET /ping. Не проверяет зависимости, только факт
// того, что процесс жив и принимает запросы.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	message := "pong"
	res := dto.PingResponse{
		Message: &message,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
