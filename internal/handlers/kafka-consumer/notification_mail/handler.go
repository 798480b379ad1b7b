package notification_mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/entities"
	"logistics/internal/pkg/mailer"
	"logistics/pkg/logger"
)

type Handler struct {
	sender                   Sender
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, sender Sender, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		sender:                   sender,
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

// envelope — формат сообщения в топике уведомлений, пишет его NotificationGateway.
type envelope struct {
	Job     string          `json:"job"`
	Payload json.RawMessage `json:"payload"`
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("notification.mail: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("notification.mail: session context done, exiting ConsumeClaim")
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

	var env envelope
	err := json.Unmarshal(message.Value, &env)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("notification.mail handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("job", env.Job),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("notification.mail processing")

	err = h.dispatch(ctx, env)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.mail handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, errUnknownJob):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.mail handler unknown job key")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.mail handler failed to process job")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("notification.mail: sent")

	sess.MarkMessage(message, "")
	return false
}

var errUnknownJob = errors.New("unknown notification job")

func (h *Handler) dispatch(ctx context.Context, env envelope) error {
	switch entities.NotificationJobKey(env.Job) {
	case entities.JobCreationMail:
		var job entities.CreationMailJob
		if err := json.Unmarshal(env.Payload, &job); err != nil {
			return fmt.Errorf("unmarshal %s payload: %w", env.Job, err)
		}

		params, err := mailer.CreationMail(&job)
		if err != nil {
			return err
		}
		return h.sender.SendEmail(ctx, params)

	case entities.JobCancellationMail:
		var job entities.CancellationMailJob
		if err := json.Unmarshal(env.Payload, &job); err != nil {
			return fmt.Errorf("unmarshal %s payload: %w", env.Job, err)
		}

		params, err := mailer.CancellationMail(&job)
		if err != nil {
			return err
		}
		return h.sender.SendEmail(ctx, params)

	default:
		return fmt.Errorf("%w: %q", errUnknownJob, env.Job)
	}
}
