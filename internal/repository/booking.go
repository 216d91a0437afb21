package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/internal/rental"
)

var bookingColumns = []string{
	"id", "user_id", "product_id", "product_kind", "product_name", "product_image",
	"rental_from", "rental_to", "status", "payment_status", "total_amount", "transaction_id", "created_at",
}

// CommitBooking inserts the booking and folds its day tokens into the
// product's unavailable_dates inside one transaction. The product row is
// locked for the duration, and any token already present aborts with
// ErrDatesUnavailable, so two overlapping checkouts cannot both commit.
func (r *repository) CommitBooking(ctx context.Context, draft model.Booking) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	var current struct {
		Name             string         `db:"name"`
		ImageURL         string         `db:"image_url"`
		UnavailableDates pq.StringArray `db:"unavailable_dates"`
	}
	query, args, err := qb.Select("name", "image_url", "unavailable_dates").
		From(productsTableName).
		Where(sq.Eq{"id": draft.ProductID}).
		Where(sq.Eq{"kind": draft.ProductKind}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	if err := tx.GetContext(ctx, &current, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}

	requested := rental.ExpandRange(draft.RentalFrom, draft.RentalTo)
	if token := rental.FirstConflict(requested, rental.TokenSet(current.UnavailableDates)); token != "" {
		return model.Booking{}, errors.Wrap(errs.ErrDatesUnavailable, token)
	}

	merged := append(current.UnavailableDates, requested...)
	query, args, err = qb.Update(productsTableName).
		Set("unavailable_dates", merged).
		Where(sq.Eq{"id": draft.ProductID}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.Booking{}, err
	}

	query, args, err = qb.Insert(bookingsTableName).
		Columns("id", "user_id", "product_id", "product_kind", "product_name", "product_image",
			"rental_from", "rental_to", "status", "payment_status", "total_amount", "transaction_id").
		Values(uuid.New(), draft.UserID, draft.ProductID, draft.ProductKind, current.Name, current.ImageURL,
			draft.RentalFrom.Format(time.DateOnly), draft.RentalTo.Format(time.DateOnly),
			model.StatusPendingPayment, model.PaymentPending, draft.TotalAmount, draft.TransactionID).
		Suffix("returning " + joinColumns(bookingColumns)).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var created model.Booking
	if err := tx.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CommitBooking insert", zap.String("q", query), zap.Error(err))
		return model.Booking{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	return created, nil
}

func (r *repository) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

// ListBookings returns all bookings when userID is empty (the admin view),
// newest rental start first.
func (r *repository) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	q := qb.Select(bookingColumns...).
		From(bookingsTableName).
		OrderBy("rental_from desc")
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (model.Booking, error) {
	query, args, err := qb.Update(bookingsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + joinColumns(bookingColumns)).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *repository) UpdatePaymentStatus(ctx context.Context, id string, payment model.PaymentStatus, status model.BookingStatus) (model.Booking, error) {
	query, args, err := qb.Update(bookingsTableName).
		Set("payment_status", payment).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + joinColumns(bookingColumns)).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}
