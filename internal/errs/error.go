package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDatesUnavailable = errors.New("requested dates are no longer available")
	ErrDuplicateCode    = errors.New("discount code already exists")
	ErrNotDeliverable   = errors.New("delivery is not available for this address")
	ErrInvalidPeriod    = errors.New("rental period is invalid")
)
