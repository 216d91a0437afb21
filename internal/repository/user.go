package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/prency-hangers/rental-service/internal/errs"
	"github.com/prency-hangers/rental-service/internal/model"
)

var userColumns = []string{
	"uid", "email", "display_name", "phone_number", "role", "address", "city", "state", "zip",
}

func (r *repository) ListUsers(ctx context.Context) ([]model.AppUser, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("display_name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.AppUser
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) GetUser(ctx context.Context, uid string) (model.AppUser, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"uid": uid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.AppUser{}, err
	}
	var u model.AppUser
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AppUser{}, errs.ErrNotFound
		}
		return model.AppUser{}, err
	}
	return u, nil
}

// EnsureUser mirrors the identity-provider principal into the users table
// on first sight. Existing rows keep their profile and role; only the email
// from the provider is refreshed.
func (r *repository) EnsureUser(ctx context.Context, u model.AppUser) (model.AppUser, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("uid", "email", "display_name", "role").
		Values(u.UID, u.Email, u.DisplayName, model.RoleCustomer).
		Suffix("on conflict (uid) do update set email = excluded.email returning " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return model.AppUser{}, err
	}
	var stored model.AppUser
	if err := r.db.GetContext(ctx, &stored, query, args...); err != nil {
		return model.AppUser{}, err
	}
	return stored, nil
}

func (r *repository) UpdateUserProfile(ctx context.Context, uid string, req model.UpdateProfileRequest) (model.AppUser, error) {
	q := qb.Update(usersTableName).Where(sq.Eq{"uid": uid})

	set := false
	if req.DisplayName != nil {
		q, set = q.Set("display_name", *req.DisplayName), true
	}
	if req.PhoneNumber != nil {
		q, set = q.Set("phone_number", *req.PhoneNumber), true
	}
	if req.Address != nil {
		q, set = q.Set("address", *req.Address), true
	}
	if req.City != nil {
		q, set = q.Set("city", *req.City), true
	}
	if req.State != nil {
		q, set = q.Set("state", *req.State), true
	}
	if req.Zip != nil {
		q, set = q.Set("zip", *req.Zip), true
	}
	if !set {
		return r.GetUser(ctx, uid)
	}

	query, args, err := q.Suffix("returning " + joinColumns(userColumns)).ToSql()
	if err != nil {
		return model.AppUser{}, err
	}
	var u model.AppUser
	if err := r.db.GetContext(ctx, &u, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.AppUser{}, errs.ErrNotFound
		}
		return model.AppUser{}, err
	}
	return u, nil
}

func (r *repository) UpdateUserRole(ctx context.Context, uid string, role model.UserRole) error {
	query, args, err := qb.Update(usersTableName).
		Set("role", role).
		Where(sq.Eq{"uid": uid}).
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
