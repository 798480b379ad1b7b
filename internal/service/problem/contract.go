//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=problem_test
package problem

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryID int64, description string) (*entities.DeliveryProblem, error)

	GetByID(ctx context.Context, id int64) (*entities.DeliveryProblem, error)
	GetByDelivery(ctx context.Context, deliveryID int64) ([]entities.DeliveryProblem, error)
	GetPendingPage(ctx context.Context, limit, offset int64) ([]entities.PendingProblem, int64, error)
}

type DeliveryService interface {
	GetDelivery(ctx context.Context, id int64) (*entities.DeliveryInfo, error)
	MarkDeliveryCanceled(ctx context.Context, id int64, canceledAt time.Time) (*entities.Delivery, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, key entities.NotificationJobKey, payload interface{}) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
