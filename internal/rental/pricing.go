package rental

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/prency-hangers/rental-service/internal/model"
)

const (
	StandardShippingFee    = 150.00
	SecurityDepositPerItem = 2000.00

	deliverableCity = "indore"
	freeShippingZip = "452011"
)

var (
	ErrDiscountExpired = errors.New("discount code has expired")
	ErrMinOrderNotMet  = errors.New("minimum order amount not met")
)

// RentalDays is the inclusive day count of [from, to]; zero when to
// precedes from (an invalid booking the caller must reject).
func RentalDays(from, to time.Time) int {
	start, end := day(from), day(to)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

func LineItemTotal(pricePerDay float64, days int) float64 {
	return pricePerDay * float64(days)
}

// DiscountAmount applies d to subtotal. Fixed discounts return Value,
// percentage discounts Value percent of subtotal, both gated on
// MinOrderAmount and expiry.
func DiscountAmount(d model.Discount, subtotal float64, now time.Time) (float64, error) {
	if d.Status == model.DiscountExpired || d.Expiry.Before(now) {
		return 0, ErrDiscountExpired
	}
	if subtotal < d.MinOrderAmount {
		return 0, ErrMinOrderNotMet
	}
	switch d.Type {
	case model.DiscountFixed:
		return d.Value, nil
	case model.DiscountPercentage:
		return subtotal * d.Value / 100, nil
	}
	return 0, nil
}

// ShippingFee resolves the static delivery policy: only one city is served,
// one zip inside it ships free, everything else pays the flat fee. The
// second return is false when the address is out of the delivery area.
func ShippingFee(city, zip string) (float64, bool) {
	if !strings.EqualFold(strings.TrimSpace(city), deliverableCity) {
		return 0, false
	}
	if zip == freeShippingZip {
		return 0, true
	}
	return StandardShippingFee, true
}

func FinalTotal(subtotal, taxes, shippingFee, securityDeposit, discountAmount float64) float64 {
	return subtotal + taxes + shippingFee + securityDeposit - discountAmount
}
