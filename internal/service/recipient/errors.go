package recipient

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid recipient name")
	ErrInvalidZipCode        = errors.New("invalid recipient zip code")

	ErrRecipientNotFound = errors.New("recipient does not exists")
)
