package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/internal/rental"
	"github.com/prency-hangers/rental-service/pkg/kafka"
)

// CreateBooking prices the rental, commits the booking atomically with the
// product's availability update, and enqueues the confirmation email. The
// enqueue happens after the commit and its failure never fails the booking.
func (s *Service) CreateBooking(ctx context.Context, user model.AppUser, req model.CreateBookingRequest) (model.Booking, error) {
	now := s.nowFunc()
	from, to := req.RentalFrom.Time, req.RentalTo.Time
	if rental.RentalDays(from, to) == 0 {
		return model.Booking{}, errs.ErrInvalidPeriod
	}
	if rental.IsRangeBlocked(from, to, nil, now) {
		return model.Booking{}, errors.Wrap(errs.ErrInvalidPeriod, "rental period starts in the past")
	}

	product, err := s.repo.GetProduct(ctx, req.ProductKind, req.ProductID)
	if err != nil {
		return model.Booking{}, err
	}
	if !product.Availability {
		return model.Booking{}, errs.ErrDatesUnavailable
	}

	days := rental.RentalDays(from, to)
	subtotal := rental.LineItemTotal(product.Price, days)

	var discount float64
	if req.DiscountCode != "" {
		d, err := s.repo.GetDiscountByCode(ctx, req.DiscountCode)
		if err != nil {
			return model.Booking{}, err
		}
		if discount, err = rental.DiscountAmount(d, subtotal, now); err != nil {
			return model.Booking{}, err
		}
	}

	shipping, deliverable := rental.ShippingFee(req.DeliveryCity, req.DeliveryZip)
	if !deliverable {
		return model.Booking{}, errs.ErrNotDeliverable
	}

	total := rental.FinalTotal(subtotal, 0, shipping, rental.SecurityDepositPerItem, discount)

	booking, err := s.repo.CommitBooking(ctx, model.Booking{
		UserID:        user.UID,
		ProductID:     req.ProductID,
		ProductKind:   req.ProductKind,
		RentalFrom:    from,
		RentalTo:      to,
		TotalAmount:   total,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return model.Booking{}, err
	}

	if err := s.queue.Enqueue(kafka.BookingTopic, kafka.BookingCreatedMsg{
		BookingID:     booking.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		ProductName:   booking.ProductName,
		RentalFrom:    booking.RentalFrom,
		RentalTo:      booking.RentalTo,
		TotalAmount:   booking.TotalAmount,
		TransactionID: req.TransactionID,
	}); err != nil {
		s.log.Error("enqueue booking confirmation", zap.String("bookingId", booking.ID), zap.Error(err))
	}

	return booking, nil
}

func (s *Service) GetBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	return s.repo.ListBookings(ctx, userID)
}

// UpdateBookingStatus moves a booking along its lifecycle, one step forward
// at a time.
func (s *Service) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (model.Booking, error) {
	current, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if err := rental.ValidateTransition(current.Status, status); err != nil {
		return model.Booking{}, err
	}
	return s.repo.UpdateBookingStatus(ctx, id, status)
}

// UpdatePaymentStatus records a payment status change; marking a booking
// paid confirms it as a side effect.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id string, payment model.PaymentStatus) (model.Booking, error) {
	current, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	status, err := rental.ApplyPaymentStatus(current.Status, payment)
	if err != nil {
		return model.Booking{}, err
	}
	return s.repo.UpdatePaymentStatus(ctx, id, payment, status)
}

// Quote prices a cart server-side. Items without a rental period are
// charged one day's rate. Product lookups for the cart fan out
// concurrently.
func (s *Service) Quote(ctx context.Context, req model.QuoteRequest) (model.Quote, error) {
	now := s.nowFunc()

	products := make([]model.Product, len(req.Items))
	gg, gctx := errgroup.WithContext(ctx)
	for i, item := range req.Items {
		i, item := i, item
		gg.Go(func() error {
			p, err := s.findProduct(gctx, item.ProductID)
			if err != nil {
				return err
			}
			products[i] = p
			return nil
		})
	}
	if err := gg.Wait(); err != nil {
		return model.Quote{}, err
	}

	var subtotal float64
	for i, item := range req.Items {
		if item.RentalFrom != nil && item.RentalTo != nil {
			days := rental.RentalDays(item.RentalFrom.Time, item.RentalTo.Time)
			if days == 0 {
				return model.Quote{}, errs.ErrInvalidPeriod
			}
			subtotal += rental.LineItemTotal(products[i].Price, days)
		} else {
			subtotal += products[i].Price
		}
	}

	var discount float64
	if req.DiscountCode != "" {
		d, err := s.repo.GetDiscountByCode(ctx, req.DiscountCode)
		if err != nil {
			return model.Quote{}, err
		}
		if discount, err = rental.DiscountAmount(d, subtotal, now); err != nil {
			return model.Quote{}, err
		}
	}

	var (
		shipping    float64
		deliverable = true
	)
	if req.DeliveryCity != "" {
		shipping, deliverable = rental.ShippingFee(req.DeliveryCity, req.DeliveryZip)
	}

	deposit := rental.SecurityDepositPerItem * float64(len(req.Items))
	taxes := 0.0

	return model.Quote{
		Subtotal:        subtotal,
		Taxes:           taxes,
		ShippingFee:     shipping,
		Deliverable:     deliverable,
		SecurityDeposit: deposit,
		DiscountAmount:  discount,
		Total:           rental.FinalTotal(subtotal, taxes, shipping, deposit, discount),
	}, nil
}

// findProduct looks a product up without knowing its kind.
func (s *Service) findProduct(ctx context.Context, id string) (model.Product, error) {
	p, err := s.repo.GetProduct(ctx, model.KindDress, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Product{}, err
	}
	return s.repo.GetProduct(ctx, model.KindJewelry, id)
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.nowFunc = now
	return s
}
