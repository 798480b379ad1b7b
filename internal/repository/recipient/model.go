package recipient

import "time"

type RecipientDB struct {
	ID         int64
	Name       string
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	ZipCode    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type RecipientModifyDB struct {
	ID         *int64
	Name       *string
	Street     *string
	Number     *string
	Complement *string
	City       *string
	State      *string
	ZipCode    *string
}
