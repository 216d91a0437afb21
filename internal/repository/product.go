package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
)

var productColumns = []string{
	"id", "kind", "name", "style", "jewelry_type", "price", "image_url", "images",
	"description", "hint", "availability", "related_product_ids", "unavailable_dates", "created_at",
}

func (r *repository) ListProducts(ctx context.Context, kind model.ProductKind, ids []string) ([]model.Product, error) {
	q := qb.Select(productColumns...).
		From(productsTableName).
		OrderBy("created_at desc")
	if kind != "" {
		q = q.Where(sq.Eq{"kind": kind})
	}
	if len(ids) > 0 {
		q = q.Where(sq.Eq{"id": ids})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Product
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetProduct(ctx context.Context, kind model.ProductKind, id string) (model.Product, error) {
	query, args, err := qb.Select(productColumns...).
		From(productsTableName).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"kind": kind}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Product{}, err
	}
	var p model.Product
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, errs.ErrNotFound
		}
		return model.Product{}, err
	}
	return p, nil
}

func (r *repository) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	query, args, err := qb.Insert(productsTableName).
		Columns("kind", "name", "style", "jewelry_type", "price", "image_url", "images",
			"description", "hint", "availability", "unavailable_dates").
		Values(p.Kind, p.Name, p.Style, p.JewelryType, p.Price, p.ImageURL, p.Images,
			p.Description, p.Hint, p.Availability, p.UnavailableDates).
		Suffix("returning " + joinColumns(productColumns)).
		ToSql()
	if err != nil {
		return model.Product{}, err
	}
	var created model.Product
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		r.log.Error("CreateProduct", zap.String("q", query), zap.Error(err))
		return model.Product{}, err
	}
	return created, nil
}

func (r *repository) UpdateProduct(ctx context.Context, kind model.ProductKind, id string, req model.UpdateProductRequest) (model.Product, error) {
	q := qb.Update(productsTableName).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"kind": kind})

	set := false
	if req.Name != nil {
		q, set = q.Set("name", *req.Name), true
	}
	if req.Style != nil {
		q, set = q.Set("style", *req.Style), true
	}
	if req.JewelryType != nil {
		q, set = q.Set("jewelry_type", *req.JewelryType), true
	}
	if req.Price != nil {
		q, set = q.Set("price", *req.Price), true
	}
	if req.ImageURL != nil {
		// the first gallery image tracks the cover image
		q = q.Set("image_url", *req.ImageURL).
			Set("images", pq.StringArray{*req.ImageURL})
		set = true
	}
	if req.Description != nil {
		q, set = q.Set("description", *req.Description), true
	}
	if req.Availability != nil {
		q, set = q.Set("availability", *req.Availability), true
	}
	if req.UnavailableDates != nil {
		q, set = q.Set("unavailable_dates", pq.StringArray(*req.UnavailableDates)), true
	}
	if !set {
		return r.GetProduct(ctx, kind, id)
	}

	query, args, err := q.Suffix("returning " + joinColumns(productColumns)).ToSql()
	if err != nil {
		return model.Product{}, err
	}
	var p model.Product
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Product{}, errs.ErrNotFound
		}
		return model.Product{}, err
	}
	return p, nil
}

func (r *repository) DeleteProduct(ctx context.Context, kind model.ProductKind, id string) error {
	query, args, err := qb.Delete(productsTableName).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"kind": kind}).
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
