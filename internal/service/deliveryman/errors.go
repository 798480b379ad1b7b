package deliveryman

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid deliveryman name")
	ErrInvalidEmail          = errors.New("invalid deliveryman email")

	ErrDeliverymanNotFound = errors.New("deliveryman does not exists")
	ErrEmailTaken          = errors.New("deliveryman email already exists")
)
