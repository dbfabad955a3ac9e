package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"meddelivery/internal/entities"
	"meddelivery/pkg/logger"
	retrierconfig "meddelivery/pkg/retrier"
	"meddelivery/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// envelope - формат события в топике уведомлений. Ключ сообщения -
// получатель, так все события одного пользователя попадают в одну партицию.
type envelope struct {
	RecipientID int64             `json:"recipient_id"`
	Kind        string            `json:"kind"`
	Payload     map[string]string `json:"payload"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Gateway публикует события уведомлений. Доставка best-effort: вызывающие
// сервисы не откатывают переход из-за ошибки публикации, гейтвей сам
// логирует и считает неудачи.
type Gateway struct {
	log      gatewayLogger
	producer producer
	retrier  retrier
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &Gateway{
		log:      log.With(logger.NewField("topic", topic)),
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		topic:    topic,
	}
}

func (g *Gateway) Notify(ctx context.Context, recipientID int64, kind entities.NotificationKind, payload map[string]string) error {
	value, err := json.Marshal(envelope{
		RecipientID: recipientID,
		Kind:        kind.String(),
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(recipientID, 10)),
		Value: sarama.ByteEncoder(value),
	}

	start := time.Now()
	err = g.retrier.ExecuteWithContext(ctx, func(_ context.Context) error {
		_, _, sendErr := g.producer.SendMessage(msg)
		return sendErr
	})

	NotificationPublishDuration.WithLabelValues(kind.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		NotificationsPublishedTotal.WithLabelValues(kind.String(), "error").Inc()
		g.log.Error("publish notification",
			logger.NewField("recipient_id", recipientID),
			logger.NewField("kind", kind.String()),
			logger.NewField("error", err),
		)
		return fmt.Errorf("gateway notification, publish %s: %w", kind, err)
	}

	NotificationsPublishedTotal.WithLabelValues(kind.String(), "ok").Inc()
	return nil
}
