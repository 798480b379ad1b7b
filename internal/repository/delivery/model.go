package delivery

import "time"

type DeliveryDB struct {
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

type DeliveryModifyDB struct {
	ID            *int64
	Product       *string
	RecipientID   *int64
	DeliverymanID *int64
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	SignatureID   *int64
}

// DeliveryInfoDB — плоская проекция JOIN'а доставки со связанными
// записями. Колонки подписи nullable: LEFT JOIN files.
type DeliveryInfoDB struct {
	DeliveryDB

	RecipientName       string
	RecipientStreet     string
	RecipientNumber     string
	RecipientComplement string
	RecipientCity       string
	RecipientState      string
	RecipientZipCode    string

	DeliverymanName     string
	DeliverymanEmail    string
	DeliverymanAvatarID *int64

	SignatureFileID *int64
	SignatureName   *string
	SignaturePath   *string
	SignatureURL    *string
}
