package model

import (
	"strings"
	"time"
)

// Date binds "2006-01-02" JSON strings, the token format used for
// unavailable dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type CreateBookingRequest struct {
	ProductID     string      `json:"productId" validate:"required"`
	ProductKind   ProductKind `json:"productKind" validate:"required,oneof=dress jewelry"`
	RentalFrom    Date        `json:"rentalFrom" validate:"required"`
	RentalTo      Date        `json:"rentalTo" validate:"required"`
	TransactionID string      `json:"transactionId" validate:"required,min=5"`
	DeliveryCity  string      `json:"deliveryCity" validate:"required"`
	DeliveryZip   string      `json:"deliveryZip" validate:"required,min=5"`
	DiscountCode  string      `json:"discountCode"`
}

type QuoteItem struct {
	ProductID  string `json:"productId" validate:"required"`
	RentalFrom *Date  `json:"rentalFrom"`
	RentalTo   *Date  `json:"rentalTo"`
}

type QuoteRequest struct {
	Items        []QuoteItem `json:"items" validate:"required,min=1,dive"`
	DiscountCode string      `json:"discountCode"`
	DeliveryCity string      `json:"deliveryCity"`
	DeliveryZip  string      `json:"deliveryZip"`
}

type Quote struct {
	Subtotal        float64 `json:"subtotal"`
	Taxes           float64 `json:"taxes"`
	ShippingFee     float64 `json:"shippingFee"`
	Deliverable     bool    `json:"deliverable"`
	SecurityDeposit float64 `json:"securityDeposit"`
	DiscountAmount  float64 `json:"discountAmount"`
	Total           float64 `json:"total"`
}

type CreateProductRequest struct {
	Kind             ProductKind `json:"kind" validate:"required,oneof=dress jewelry"`
	Name             string      `json:"name" validate:"required"`
	Style            string      `json:"style"`
	JewelryType      string      `json:"type"`
	Price            float64     `json:"price" validate:"required,gt=0"`
	ImageURL         string      `json:"imageUrl" validate:"required,url"`
	Description      string      `json:"description"`
	Availability     bool        `json:"availability"`
	UnavailableDates []string    `json:"unavailableDates" validate:"omitempty,dive,datetime=2006-01-02"`
}

type UpdateProductRequest struct {
	Name             *string   `json:"name"`
	Style            *string   `json:"style"`
	JewelryType      *string   `json:"type"`
	Price            *float64  `json:"price" validate:"omitempty,gt=0"`
	ImageURL         *string   `json:"imageUrl" validate:"omitempty,url"`
	Description      *string   `json:"description"`
	Availability     *bool     `json:"availability"`
	UnavailableDates *[]string `json:"unavailableDates" validate:"omitempty,dive,datetime=2006-01-02"`
}

type CreateDiscountRequest struct {
	Code           string         `json:"code" validate:"required,min=3"`
	Title          string         `json:"title" validate:"required"`
	Description    string         `json:"description"`
	Type           DiscountType   `json:"type" validate:"required,oneof=percentage fixed"`
	Value          float64        `json:"value" validate:"required,gt=0"`
	MinOrderAmount float64        `json:"minOrderAmount" validate:"gte=0"`
	Expiry         time.Time      `json:"expiry" validate:"required"`
	Status         DiscountStatus `json:"status" validate:"required,oneof=active expired"`
}

type UpdateDiscountRequest struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Type           *DiscountType   `json:"type" validate:"omitempty,oneof=percentage fixed"`
	Value          *float64        `json:"value" validate:"omitempty,gt=0"`
	MinOrderAmount *float64        `json:"minOrderAmount" validate:"omitempty,gte=0"`
	Expiry         *time.Time      `json:"expiry"`
	Status         *DiscountStatus `json:"status" validate:"omitempty,oneof=active expired"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	PhoneNumber *string `json:"phoneNumber"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Zip         *string `json:"zip"`
}

type UpdateStatusRequest struct {
	Status BookingStatus `json:"status" validate:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus PaymentStatus `json:"paymentStatus" validate:"required,oneof=pending paid failed"`
}

type UpdateRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=customer admin"`
}
