package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/config"
	"github.com/prency-hangers/rental-service/pkg/kafka"
)

func testMsg() kafka.BookingCreatedMsg {
	return kafka.BookingCreatedMsg{
		BookingID:     "b1",
		Email:         "maya@example.com",
		DisplayName:   "Maya",
		ProductName:   "Scarlet Gown",
		RentalFrom:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		RentalTo:      time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC),
		TotalAmount:   4950,
		TransactionID: "TXN-12345",
	}
}

func TestMailer_SendBookingConfirmation(t *testing.T) {
	t.Parallel()
	var got sendEmailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := NewMailer(config.Mailer{
		BaseURL: srv.URL,
		APIKey:  "secret",
		From:    "orders@prencyhangers.example",
	}, zap.NewNop())

	require.NoError(t, m.SendBookingConfirmation(context.Background(), testMsg()))

	require.Equal(t, "orders@prencyhangers.example", got.From)
	require.Equal(t, []string{"maya@example.com"}, got.To)
	require.Equal(t, "Your order b1 is confirmed", got.Subject)
	require.Contains(t, got.HTML, "Hi Maya")
	require.Contains(t, got.HTML, "Order ID: b1")
	require.Contains(t, got.HTML, "Scarlet Gown")
	require.Contains(t, got.HTML, "2024-05-01 to 2024-05-03")
	require.Contains(t, got.HTML, "Rs. 4950.00")
	require.Contains(t, got.HTML, "TXN-12345")
}

func TestMailer_SendBookingConfirmation_ProviderError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := NewMailer(config.Mailer{BaseURL: srv.URL, APIKey: "secret"}, zap.NewNop())

	err := m.SendBookingConfirmation(context.Background(), testMsg())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 502")
}
