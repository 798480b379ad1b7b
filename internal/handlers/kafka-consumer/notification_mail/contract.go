//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_mail_test
package notification_mail

import (
	"context"

	"logistics/internal/pkg/mailer"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Sender interface {
	SendEmail(ctx context.Context, params mailer.SendEmailParams) error
}
