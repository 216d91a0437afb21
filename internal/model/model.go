package model

import (
	"time"

	"github.com/lib/pq"
)

type ProductKind string

const (
	KindDress   ProductKind = "dress"
	KindJewelry ProductKind = "jewelry"
)

// Product is a rentable item, dress or jewelry. Style is set for dresses,
// JewelryType for jewelry. UnavailableDates is a denormalized booking index:
// every day covered by a booking for this product, plus admin manual blocks.
type Product struct {
	ID                string         `json:"id" db:"id"`
	Kind              ProductKind    `json:"kind" db:"kind"`
	Name              string         `json:"name" db:"name"`
	Style             string         `json:"style,omitempty" db:"style"`
	JewelryType       string         `json:"type,omitempty" db:"jewelry_type"`
	Price             float64        `json:"price" db:"price"`
	ImageURL          string         `json:"imageUrl" db:"image_url"`
	Images            pq.StringArray `json:"images" db:"images"`
	Description       string         `json:"description" db:"description"`
	Hint              string         `json:"hint" db:"hint"`
	Availability      bool           `json:"availability" db:"availability"`
	RelatedProductIDs pq.StringArray `json:"relatedProductIds,omitempty" db:"related_product_ids"`
	UnavailableDates  pq.StringArray `json:"unavailableDates" db:"unavailable_dates"`
	CreatedAt         time.Time      `json:"-" db:"created_at"`
}

type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusShipped        BookingStatus = "shipped"
	StatusDelivered      BookingStatus = "delivered"
	StatusReturned       BookingStatus = "returned"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Booking embeds a product snapshot so historical bookings stay displayable
// after the product changes or is deleted.
type Booking struct {
	ID            string        `json:"id" db:"id"`
	UserID        string        `json:"userId" db:"user_id"`
	ProductID     string        `json:"productId" db:"product_id"`
	ProductKind   ProductKind   `json:"productKind" db:"product_kind"`
	ProductName   string        `json:"productName" db:"product_name"`
	ProductImage  string        `json:"productImage" db:"product_image"`
	RentalFrom    time.Time     `json:"rentalFrom" db:"rental_from"`
	RentalTo      time.Time     `json:"rentalTo" db:"rental_to"`
	Status        BookingStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	TotalAmount   float64       `json:"totalAmount" db:"total_amount"`
	TransactionID string        `json:"transactionId,omitempty" db:"transaction_id"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type DiscountStatus string

const (
	DiscountActive  DiscountStatus = "active"
	DiscountExpired DiscountStatus = "expired"
)

type Discount struct {
	ID             string         `json:"id" db:"id"`
	Code           string         `json:"code" db:"code"`
	Title          string         `json:"title" db:"title"`
	Description    string         `json:"description" db:"description"`
	Type           DiscountType   `json:"type" db:"type"`
	Value          float64        `json:"value" db:"value"`
	MinOrderAmount float64        `json:"minOrderAmount" db:"min_order_amount"`
	Expiry         time.Time      `json:"expiry" db:"expiry"`
	Status         DiscountStatus `json:"status" db:"status"`
}

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// AppUser mirrors the identity-provider principal plus profile fields
// owned by this application.
type AppUser struct {
	UID         string   `json:"uid" db:"uid"`
	Email       string   `json:"email" db:"email"`
	DisplayName string   `json:"displayName" db:"display_name"`
	PhoneNumber string   `json:"phoneNumber" db:"phone_number"`
	Role        UserRole `json:"role" db:"role"`
	Address     string   `json:"address,omitempty" db:"address"`
	City        string   `json:"city,omitempty" db:"city"`
	State       string   `json:"state,omitempty" db:"state"`
	Zip         string   `json:"zip,omitempty" db:"zip"`
}
