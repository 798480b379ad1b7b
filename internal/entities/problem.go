package entities

import "time"

type DeliveryProblem struct {
	ID          int64
	DeliveryID  int64
	Description string
	CreatedAt   time.Time
}

// PendingProblem это проблема вместе с её неотменённой доставкой,
// формат листинга /delivery/problems.
type PendingProblem struct {
	Problem  DeliveryProblem
	Delivery Delivery
}

type PendingProblemPage struct {
	Problems []PendingProblem
	LastPage int64
}
