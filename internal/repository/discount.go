package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
)

var discountColumns = []string{
	"id", "code", "title", "description", "type", "value", "min_order_amount", "expiry", "status",
}

func (r *repository) ListDiscounts(ctx context.Context) ([]model.Discount, error) {
	query, args, err := qb.Select(discountColumns...).
		From(discountsTableName).
		OrderBy("expiry desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Discount
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetDiscount(ctx context.Context, id string) (model.Discount, error) {
	return r.getDiscount(ctx, sq.Eq{"id": id})
}

// GetDiscountByCode matches codes case-insensitively: codes are stored
// uppercased and the lookup uppercases its input.
func (r *repository) GetDiscountByCode(ctx context.Context, code string) (model.Discount, error) {
	return r.getDiscount(ctx, sq.Eq{"code": strings.ToUpper(code)})
}

func (r *repository) getDiscount(ctx context.Context, where sq.Eq) (model.Discount, error) {
	query, args, err := qb.Select(discountColumns...).
		From(discountsTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Discount{}, err
	}
	var d model.Discount
	if err := r.db.GetContext(ctx, &d, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Discount{}, errs.ErrNotFound
		}
		return model.Discount{}, err
	}
	return d, nil
}

func (r *repository) CreateDiscount(ctx context.Context, req model.CreateDiscountRequest) (model.Discount, error) {
	query, args, err := qb.Insert(discountsTableName).
		Columns("code", "title", "description", "type", "value", "min_order_amount", "expiry", "status").
		Values(strings.ToUpper(req.Code), req.Title, req.Description, req.Type, req.Value,
			req.MinOrderAmount, req.Expiry, req.Status).
		Suffix("returning " + joinColumns(discountColumns)).
		ToSql()
	if err != nil {
		return model.Discount{}, err
	}
	var d model.Discount
	if err := r.db.GetContext(ctx, &d, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Discount{}, errs.ErrDuplicateCode
		}
		return model.Discount{}, err
	}
	return d, nil
}

func (r *repository) UpdateDiscount(ctx context.Context, id string, req model.UpdateDiscountRequest) (model.Discount, error) {
	q := qb.Update(discountsTableName).Where(sq.Eq{"id": id})

	set := false
	if req.Title != nil {
		q, set = q.Set("title", *req.Title), true
	}
	if req.Description != nil {
		q, set = q.Set("description", *req.Description), true
	}
	if req.Type != nil {
		q, set = q.Set("type", *req.Type), true
	}
	if req.Value != nil {
		q, set = q.Set("value", *req.Value), true
	}
	if req.MinOrderAmount != nil {
		q, set = q.Set("min_order_amount", *req.MinOrderAmount), true
	}
	if req.Expiry != nil {
		q, set = q.Set("expiry", *req.Expiry), true
	}
	if req.Status != nil {
		q, set = q.Set("status", *req.Status), true
	}
	if !set {
		return r.GetDiscount(ctx, id)
	}

	query, args, err := q.Suffix("returning " + joinColumns(discountColumns)).ToSql()
	if err != nil {
		return model.Discount{}, err
	}
	var d model.Discount
	if err := r.db.GetContext(ctx, &d, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Discount{}, errs.ErrNotFound
		}
		return model.Discount{}, err
	}
	return d, nil
}

func (r *repository) DeleteDiscount(ctx context.Context, id string) error {
	query, args, err := qb.Delete(discountsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
