package rental

import (
	"github.com/pkg/errors"

	"github.com/prency-hangers/rental-service/internal/model"
)

var ErrIllegalTransition = errors.New("illegal booking status transition")

// legalTransitions is the booking lifecycle: strictly forward, one step at
// a time. Skipping or reversing a step is rejected.
var legalTransitions = map[model.BookingStatus]model.BookingStatus{
	model.StatusPendingPayment: model.StatusConfirmed,
	model.StatusConfirmed:      model.StatusShipped,
	model.StatusShipped:        model.StatusDelivered,
	model.StatusDelivered:      model.StatusReturned,
}

// ValidateTransition checks a status change against the lifecycle table.
func ValidateTransition(from, to model.BookingStatus) error {
	next, ok := legalTransitions[from]
	if !ok || next != to {
		return errors.Wrapf(ErrIllegalTransition, "%s -> %s", from, to)
	}
	return nil
}

// ApplyPaymentStatus returns the booking status that must accompany a
// payment status change: marking a booking paid forces it confirmed.
// Other payment statuses leave the booking status untouched.
func ApplyPaymentStatus(current model.BookingStatus, payment model.PaymentStatus) (model.BookingStatus, error) {
	if payment != model.PaymentPaid {
		return current, nil
	}
	switch current {
	case model.StatusPendingPayment:
		return model.StatusConfirmed, nil
	case model.StatusConfirmed:
		return model.StatusConfirmed, nil
	}
	return current, errors.Wrapf(ErrIllegalTransition, "cannot mark %s paid", current)
}
