package entities

import "time"

type Delivery struct {
	ID            int64
	Product       string
	RecipientID   int64
	DeliverymanID int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	SignatureID   *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DeliveryModify struct {
	ID            *int64
	Product       *string
	RecipientID   *int64
	DeliverymanID *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	SignatureID   *int64
}

type DeliveryStatusType string

const (
	DeliveryPending   DeliveryStatusType = "pending"
	DeliveryWithdrawn DeliveryStatusType = "withdrawn"
	DeliveryDelivered DeliveryStatusType = "delivered"
	DeliveryCanceled  DeliveryStatusType = "canceled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// Status восстанавливает статус из timestamp-полей.
// canceled_at имеет приоритет: отменённая доставка остаётся отменённой.
func (d *Delivery) Status() DeliveryStatusType {
	switch {
	case d.CanceledAt != nil:
		return DeliveryCanceled
	case d.EndDate != nil:
		return DeliveryDelivered
	case d.StartDate != nil:
		return DeliveryWithdrawn
	default:
		return DeliveryPending
	}
}

// DeliveryInfo это Delivery вместе со связанными записями,
// используется листингами и payload'ом письма об отмене.
type DeliveryInfo struct {
	Delivery
	Recipient   Recipient
	Deliveryman Deliveryman
	Signature   *File
}

type DeliveryPage struct {
	Deliveries []DeliveryInfo
	LastPage   int64
}
