package entities

import "time"

type Recipient struct {
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

type RecipientModify struct {
	ID         *int64
	Name       *string
	Street     *string
	Number     *string
	Complement *string
	City       *string
	State      *string
	ZipCode    *string
}
