//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=recipients_get_test
package recipients_get

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetRecipients(ctx context.Context) ([]entities.Recipient, error)
}
