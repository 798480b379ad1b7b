//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	GetInfoByID(ctx context.Context, id int64) (*entities.DeliveryInfo, error)
	GetAll(ctx context.Context) ([]entities.DeliveryInfo, error)
	GetByDeliveryman(ctx context.Context, deliverymanID int64, delivered bool, limit, offset int64) ([]entities.DeliveryInfo, int64, error)

	CountWithdrawalsBetween(ctx context.Context, deliverymanID int64, from, to time.Time) (int64, error)
	CountWithdrawnOlderThan(ctx context.Context, olderThan time.Time) (int64, error)
}

type DeliverymanService interface {
	GetDeliveryman(ctx context.Context, id int64) (*entities.Deliveryman, error)
}

type RecipientService interface {
	GetRecipient(ctx context.Context, id int64) (*entities.Recipient, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, key entities.NotificationJobKey, payload interface{}) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
