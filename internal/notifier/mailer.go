package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prency-hangers/rental-service/config"
	"github.com/prency-hangers/rental-service/pkg/circuit_breaker"
	"github.com/prency-hangers/rental-service/pkg/kafka"
)

// Mailer sends booking confirmations through a Resend-compatible HTTP API.
// Calls go through a circuit breaker so a dead mail provider does not pin
// every consumer worker on timeouts.
type Mailer struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.Mailer
	cb     circuit_breaker.CircuitBreaker
}

func NewMailer(cfg config.Mailer, log *zap.Logger) *Mailer {
	return &Mailer{
		log:    log.Named("mailer"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg,
		cb:     circuit_breaker.New(100, time.Second*30, 0.2, 2),
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *Mailer) SendBookingConfirmation(ctx context.Context, msg kafka.BookingCreatedMsg) error {
	return m.cb.Call(func() error {
		return m.send(ctx, msg)
	})
}

func (m *Mailer) send(ctx context.Context, msg kafka.BookingCreatedMsg) error {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(sendEmailRequest{
		From:    m.cfg.From,
		To:      []string{msg.Email},
		Subject: fmt.Sprintf("Your order %s is confirmed", msg.BookingID),
		HTML:    confirmationBody(msg),
	}); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/emails", b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.Errorf("send email: status %d", resp.StatusCode)
	}
	m.log.Debug("confirmation sent",
		zap.String("bookingId", msg.BookingID),
		zap.String("to", msg.Email))
	return nil
}

func confirmationBody(msg kafka.BookingCreatedMsg) string {
	name := msg.DisplayName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thank you for your order! Here are the details:</p>
<ul>
<li>Order ID: %s</li>
<li>Product: %s</li>
<li>Rental period: %s to %s</li>
<li>Total amount: Rs. %.2f</li>
<li>Transaction ID: %s</li>
</ul>
<p>We will notify you once your order ships.</p>`,
		name,
		msg.BookingID,
		msg.ProductName,
		msg.RentalFrom.Format(time.DateOnly),
		msg.RentalTo.Format(time.DateOnly),
		msg.TotalAmount,
		msg.TransactionID,
	)
}
