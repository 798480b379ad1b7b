package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidProduct        = errors.New("invalid product description")

	ErrDeliveryNotFound = errors.New("delivery does not exists")

	ErrDeliveryAlreadyStarted = errors.New("the delivery already has been sent")
	ErrDeliveryCanceled       = errors.New("the delivery has been canceled")
	ErrAlreadyWithdrawn       = errors.New("the delivery already has been withdrawn")

	ErrOutsideWithdrawalWindow    = errors.New("the delivery only can be started between 8:00 and 18:00")
	ErrDailyQuotaExceeded         = errors.New("you already made your 5 deliveries of the day")
	ErrWithdrawalNotFound         = errors.New("the withdrawal does not exists")
	ErrCompletionBeforeWithdrawal = errors.New("delivery time has to be after the withdrawal time")
)
