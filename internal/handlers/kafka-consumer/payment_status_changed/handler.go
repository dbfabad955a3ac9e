package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"meddelivery/internal/entities"
	orderservice "meddelivery/internal/service/order"
	"meddelivery/pkg/logger"
)

// changedEvent - событие платежного сервиса из топика платежей.
type changedEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event changedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	executeFn, err := h.factory.GetHandler(entities.PaymentStatusType(event.Status))
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, orderservice.ErrUndefinedStatus) {
			msgLog.Warn("payment.status.changed handler unknown payment status")
			sess.MarkMessage(message, "")
			return false
		}
		msgLog.With(
			logger.NewField("error", err),
		).Warn("payment.status.changed handler failed to resolve handler")
		sess.MarkMessage(message, "")
		return false
	}

	err = executeFn(ctx, event.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler order not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
