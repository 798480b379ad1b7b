//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problems_pending_get_test
package problems_pending_get

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
	GetPendingProblems(ctx context.Context, page int64) (*entities.PendingProblemPage, error)
}
