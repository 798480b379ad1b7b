package problem

import "time"

type DeliveryProblemDB struct {
	ID          int64
	DeliveryID  int64
	Description string
	CreatedAt   time.Time
}

// PendingProblemDB — строка листинга нерешённых проблем:
// проблема плюс её (неотменённая) доставка.
type PendingProblemDB struct {
	DeliveryProblemDB

	Product             string
	RecipientID         int64
	DeliverymanID       int64
	DeliveryStartDate   *time.Time
	DeliveryEndDate     *time.Time
	DeliveryCanceledAt  *time.Time
	DeliverySignatureID *int64
}
