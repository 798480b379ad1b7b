//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliverymen_get_test
package deliverymen_get

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
	GetDeliverymen(ctx context.Context, page int64) (*entities.DeliverymanPage, error)
}
