// Package dto содержит транспортные типы REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Recipient struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
}

type RecipientCreate struct {
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	Number     string  `json:"number"`
	Complement *string `json:"complement,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	ZipCode    string  `json:"zip_code"`
}

type RecipientCreateResponse struct {
	ID int64 `json:"id"`
}

type RecipientUpdate struct {
	Name       *string `json:"name,omitempty"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	Complement *string `json:"complement,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	ZipCode    *string `json:"zip_code,omitempty"`
}

type Deliveryman struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID *int64 `json:"avatar_id,omitempty"`
}

type DeliverymanCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	AvatarID *int64 `json:"avatar_id,omitempty"`
}

type DeliverymanCreateResponse struct {
	ID int64 `json:"id"`
}

type DeliverymanUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	AvatarID *int64  `json:"avatar_id,omitempty"`
}

type DeliverymanPage struct {
	Deliverymen []Deliveryman `json:"deliverymen"`
	LastPage    int64         `json:"last_page"`
}

type File struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type Delivery struct {
	ID            int64      `json:"id"`
	Product       string     `json:"product"`
	RecipientID   int64      `json:"recipient_id"`
	DeliverymanID int64      `json:"deliveryman_id"`
	Status        string     `json:"status"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CanceledAt    *time.Time `json:"canceled_at,omitempty"`
	SignatureID   *int64     `json:"signature_id,omitempty"`
}

type DeliveryCreate struct {
	Product       string `json:"product"`
	RecipientID   int64  `json:"recipient_id"`
	DeliverymanID int64  `json:"deliveryman_id"`
}

type DeliveryCreateResponse struct {
	ID int64 `json:"id"`
}

type DeliveryUpdate struct {
	Product       string `json:"product"`
	RecipientID   int64  `json:"recipient_id"`
	DeliverymanID int64  `json:"deliveryman_id"`
}

type DeliveryInfo struct {
	Delivery
	Recipient   Recipient   `json:"recipient"`
	Deliveryman Deliveryman `json:"deliveryman"`
	Signature   *File       `json:"signature,omitempty"`
}

type DeliveryPage struct {
	Deliveries []DeliveryInfo `json:"deliveries"`
	LastPage   int64          `json:"last_page"`
}

// DeliverymanDeliveryUpdate — тело PUT /deliveryman/{deliverymanId}/delivery/{id}.
// Ровно одно из двух: start_date (взятие) либо end_date (завершение).
type DeliverymanDeliveryUpdate struct {
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	SignatureID *int64     `json:"signature_id,omitempty"`
}

type Problem struct {
	ID          int64     `json:"id"`
	DeliveryID  int64     `json:"delivery_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProblemCreate struct {
	Description string `json:"description"`
}

type ProblemCreateResponse struct {
	ID int64 `json:"id"`
}

type PendingProblem struct {
	Problem
	Delivery Delivery `json:"delivery"`
}

type PendingProblemPage struct {
	Problems []PendingProblem `json:"problems"`
	LastPage int64            `json:"last_page"`
}
