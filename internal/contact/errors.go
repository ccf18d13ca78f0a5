package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for the contact flow
var (
	ErrValidation    = errors.New("validation error")
	ErrMissingFields = fmt.Errorf("%w: email and message are required", ErrValidation)
)

// DeliveryError reports a relay failure. Its message is the relay's own.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
