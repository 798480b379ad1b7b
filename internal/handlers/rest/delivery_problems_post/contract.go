//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_problems_post_test
package delivery_problems_post

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
	ReportProblem(ctx context.Context, deliveryID int64, description string) (*entities.DeliveryProblem, error)
}
