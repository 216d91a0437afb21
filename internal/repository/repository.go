package repository

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/internal/model"
)

type Repository interface {
	ListProducts(ctx context.Context, kind model.ProductKind, ids []string) ([]model.Product, error)
	GetProduct(ctx context.Context, kind model.ProductKind, id string) (model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (model.Product, error)
	UpdateProduct(ctx context.Context, kind model.ProductKind, id string, req model.UpdateProductRequest) (model.Product, error)
	DeleteProduct(ctx context.Context, kind model.ProductKind, id string) error

	CommitBooking(ctx context.Context, draft model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, id string) (model.Booking, error)
	ListBookings(ctx context.Context, userID string) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (model.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, payment model.PaymentStatus, status model.BookingStatus) (model.Booking, error)

	ListDiscounts(ctx context.Context) ([]model.Discount, error)
	GetDiscount(ctx context.Context, id string) (model.Discount, error)
	GetDiscountByCode(ctx context.Context, code string) (model.Discount, error)
	CreateDiscount(ctx context.Context, req model.CreateDiscountRequest) (model.Discount, error)
	UpdateDiscount(ctx context.Context, id string, req model.UpdateDiscountRequest) (model.Discount, error)
	DeleteDiscount(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]model.AppUser, error)
	GetUser(ctx context.Context, uid string) (model.AppUser, error)
	EnsureUser(ctx context.Context, u model.AppUser) (model.AppUser, error)
	UpdateUserProfile(ctx context.Context, uid string, req model.UpdateProfileRequest) (model.AppUser, error)
	UpdateUserRole(ctx context.Context, uid string, role model.UserRole) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	productsTableName  = `products`
	bookingsTableName  = `bookings`
	discountsTableName = `discounts`
	usersTableName     = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
