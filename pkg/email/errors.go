package email

import "errors"

var (
	// ErrInvalidConfig indicates missing or malformed sender configuration.
	ErrInvalidConfig = errors.New("email.errors.invalid_config")

	// ErrDeliveryFailed indicates the relay rejected the call or the call
	// itself faulted. The wrapped cause is diagnostic only; users see a
	// generic retry prompt.
	ErrDeliveryFailed = errors.New("email.errors.delivery_failed")
)
