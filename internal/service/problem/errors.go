package problem

import "errors"

var (
	ErrInvalidDescription = errors.New("invalid problem description")

	ErrProblemNotFound = errors.New("delivery problem does not exists")

	ErrDeliveryAlreadyCanceled = errors.New("the delivery already has been canceled")
)
