package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"logistics/internal/entities"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// NotificationGateway кладёт почтовые джобы в топик уведомлений.
// Контракт fire-and-forget: ядро узнаёт только о факте постановки
// в очередь, судьбу джобы решает worker.
type NotificationGateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *NotificationGateway {
	return &NotificationGateway{
		producer: producer,
		topic:    topic,
	}
}

// envelope — то, что физически лежит в сообщении.
type envelope struct {
	Job     string          `json:"job"`
	Payload json.RawMessage `json:"payload"`
}

func (g *NotificationGateway) Enqueue(ctx context.Context, key entities.NotificationJobKey, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("enqueue %s: %w", key, err)
	}

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		NotificationJobsEnqueuedTotal.WithLabelValues(key.String(), outcomeError).Inc()
		return fmt.Errorf("marshal %s payload: %w", key, err)
	}

	value, err := json.Marshal(envelope{
		Job:     key.String(),
		Payload: rawPayload,
	})
	if err != nil {
		NotificationJobsEnqueuedTotal.WithLabelValues(key.String(), outcomeError).Inc()
		return fmt.Errorf("marshal %s envelope: %w", key, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(key.String()),
		Value: sarama.ByteEncoder(value),
	}

	_, _, err = g.producer.SendMessage(msg)
	if err != nil {
		NotificationJobsEnqueuedTotal.WithLabelValues(key.String(), outcomeError).Inc()
		return fmt.Errorf("enqueue %s: %w", key, err)
	}

	NotificationJobsEnqueuedTotal.WithLabelValues(key.String(), outcomeOK).Inc()
	return nil
}
