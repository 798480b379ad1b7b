//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryman_deliveries_get_test
package deliveryman_deliveries_get

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
	GetDeliverymanDeliveries(ctx context.Context, deliverymanID int64, delivered bool, page int64) (*entities.DeliveryPage, error)
}
