//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryman_delivery_put_test
package deliveryman_delivery_put

import (
	"context"
	"time"

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
	RecordWithdrawal(ctx context.Context, deliverymanID, deliveryID int64, startDate time.Time) (*entities.Delivery, error)
	RecordCompletion(ctx context.Context, deliverymanID, deliveryID int64, endDate time.Time, signatureID *int64) (*entities.Delivery, error)
}
