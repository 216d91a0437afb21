package handler

import (
	"context"

	"github.com/prency-hangers/rental-service/internal/model"
	"github.com/prency-hangers/rental-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StorefrontService interface {
	ListProducts(ctx context.Context, kind model.ProductKind, ids []string) ([]model.Product, error)
	GetDress(ctx context.Context, id string) (model.Product, []model.Product, error)
	GetJewelry(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (model.Product, error)
	UpdateProduct(ctx context.Context, kind model.ProductKind, id string, req model.UpdateProductRequest) (model.Product, error)
	DeleteProduct(ctx context.Context, kind model.ProductKind, id string) error

	Quote(ctx context.Context, req model.QuoteRequest) (model.Quote, error)
	CreateBooking(ctx context.Context, user model.AppUser, req model.CreateBookingRequest) (model.Booking, error)
	GetBookings(ctx context.Context, userID string) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status model.BookingStatus) (model.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, payment model.PaymentStatus) (model.Booking, error)

	ListDiscounts(ctx context.Context) ([]model.Discount, error)
	GetDiscountByCode(ctx context.Context, code string) (model.Discount, error)
	CreateDiscount(ctx context.Context, req model.CreateDiscountRequest) (model.Discount, error)
	UpdateDiscount(ctx context.Context, id string, req model.UpdateDiscountRequest) (model.Discount, error)
	DeleteDiscount(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]model.AppUser, error)
	EnsureUser(ctx context.Context, u model.AppUser) (model.AppUser, error)
	UpdateUserProfile(ctx context.Context, uid string, req model.UpdateProfileRequest) (model.AppUser, error)
	UpdateUserRole(ctx context.Context, uid string, role model.UserRole) error
}

var _ StorefrontService = (*service.Service)(nil)
