package rental

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prency-hangers/rental-service/internal/model"
)

func TestRentalDays(t *testing.T) {
	t.Parallel()
	require.Equal(t, 3, RentalDays(date("2024-01-01"), date("2024-01-03")))
	require.Equal(t, 1, RentalDays(date("2024-01-01"), date("2024-01-01")))
	require.Equal(t, 0, RentalDays(date("2024-01-03"), date("2024-01-01")))
}

func TestLineItemTotal(t *testing.T) {
	t.Parallel()
	days := RentalDays(date("2024-01-01"), date("2024-01-03"))
	require.Equal(t, 3, days)
	require.InDelta(t, 3000.0, LineItemTotal(1000, days), 1e-9)
}

func TestDiscountAmount(t *testing.T) {
	t.Parallel()
	now := date("2024-06-01")
	expiry := date("2024-12-31")

	fixed := model.Discount{
		Code: "FLAT200", Type: model.DiscountFixed, Value: 200,
		MinOrderAmount: 500, Expiry: expiry, Status: model.DiscountActive,
	}
	percent := model.Discount{
		Code: "SAVE10", Type: model.DiscountPercentage, Value: 10,
		MinOrderAmount: 500, Expiry: expiry, Status: model.DiscountActive,
	}

	tests := []struct {
		name     string
		discount model.Discount
		subtotal float64
		want     float64
		wantErr  error
	}{
		{"fixed above gate", fixed, 3000, 200, nil},
		{"fixed below gate", fixed, 400, 0, ErrMinOrderNotMet},
		{"percentage", percent, 3000, 300, nil},
		{"percentage below gate", percent, 499, 0, ErrMinOrderNotMet},
		{
			name: "expired status",
			discount: model.Discount{
				Type: model.DiscountFixed, Value: 200, Expiry: expiry,
				Status: model.DiscountExpired,
			},
			subtotal: 3000, want: 0, wantErr: ErrDiscountExpired,
		},
		{
			name: "expiry passed",
			discount: model.Discount{
				Type: model.DiscountFixed, Value: 200,
				Expiry: date("2024-01-01"), Status: model.DiscountActive,
			},
			subtotal: 3000, want: 0, wantErr: ErrDiscountExpired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DiscountAmount(tt.discount, tt.subtotal, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDiscountAmount_Monotonic(t *testing.T) {
	t.Parallel()
	now := date("2024-06-01")
	percent := model.Discount{
		Type: model.DiscountPercentage, Value: 10,
		MinOrderAmount: 100, Expiry: now.AddDate(1, 0, 0), Status: model.DiscountActive,
	}
	fixed := model.Discount{
		Type: model.DiscountFixed, Value: 200,
		MinOrderAmount: 100, Expiry: now.AddDate(1, 0, 0), Status: model.DiscountActive,
	}

	prev := 0.0
	for _, subtotal := range []float64{100, 250, 1000, 5000, 20000} {
		got, err := DiscountAmount(percent, subtotal, now)
		require.NoError(t, err)
		require.GreaterOrEqual(t, got, prev)
		prev = got

		flat, err := DiscountAmount(fixed, subtotal, now)
		require.NoError(t, err)
		require.InDelta(t, 200.0, flat, 1e-9)
	}
}

func TestShippingFee(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		city, zip   string
		fee         float64
		deliverable bool
	}{
		{"standard", "Indore", "452001", StandardShippingFee, true},
		{"free zip", "indore", "452011", 0, true},
		{"case and spaces", "  INDORE ", "452001", StandardShippingFee, true},
		{"other city", "Mumbai", "400001", 0, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fee, ok := ShippingFee(tt.city, tt.zip)
			require.Equal(t, tt.deliverable, ok)
			require.InDelta(t, tt.fee, fee, 1e-9)
		})
	}
}

func TestFinalTotal(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 3000+0+150+2000-200.0, FinalTotal(3000, 0, 150, 2000, 200), 1e-9)
}

func TestValidateTransition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		from    model.BookingStatus
		to      model.BookingStatus
		wantErr bool
	}{
		{"pending to confirmed", model.StatusPendingPayment, model.StatusConfirmed, false},
		{"confirmed to shipped", model.StatusConfirmed, model.StatusShipped, false},
		{"shipped to delivered", model.StatusShipped, model.StatusDelivered, false},
		{"delivered to returned", model.StatusDelivered, model.StatusReturned, false},
		{"skip a step", model.StatusPendingPayment, model.StatusShipped, true},
		{"reverse", model.StatusShipped, model.StatusConfirmed, true},
		{"terminal state", model.StatusReturned, model.StatusPendingPayment, true},
		{"self transition", model.StatusConfirmed, model.StatusConfirmed, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateTransition(tt.from, tt.to)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIllegalTransition)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestApplyPaymentStatus(t *testing.T) {
	t.Parallel()
	got, err := ApplyPaymentStatus(model.StatusPendingPayment, model.PaymentPaid)
	require.NoError(t, err)
	require.Equal(t, model.StatusConfirmed, got)

	got, err = ApplyPaymentStatus(model.StatusConfirmed, model.PaymentPaid)
	require.NoError(t, err)
	require.Equal(t, model.StatusConfirmed, got)

	got, err = ApplyPaymentStatus(model.StatusShipped, model.PaymentFailed)
	require.NoError(t, err)
	require.Equal(t, model.StatusShipped, got)

	_, err = ApplyPaymentStatus(model.StatusReturned, model.PaymentPaid)
	require.ErrorIs(t, err, ErrIllegalTransition)
}
