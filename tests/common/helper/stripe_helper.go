//go:build unit || e2e

package helper

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82/webhook"
)

// CheckoutSessionEvent describes a Stripe checkout.session.* webhook event.
// Zero values fall back to fixed test identifiers.
type CheckoutSessionEvent struct {
	EventID       string
	Type          string
	SessionID     string
	PaymentStatus string
	AmountTotal   int64
	BookingID     uuid.UUID
}

func (e CheckoutSessionEvent) Payload() []byte {
	if e.EventID == "" {
		e.EventID = "evt_1"
	}
	if e.SessionID == "" {
		e.SessionID = "cs_test_1"
	}
	if e.AmountTotal == 0 {
		e.AmountTotal = 17000
	}
	return []byte(fmt.Sprintf(`{
		"id": %q,
		"object": "event",
		"type": %q,
		"data": {"object": {
			"id": %q,
			"object": "checkout.session",
			"amount_total": %d,
			"payment_status": %q,
			"payment_intent": "pi_123",
			"client_reference_id": %q,
			"metadata": {"bookingId": %q}
		}}
	}`, e.EventID, e.Type, e.SessionID, e.AmountTotal, e.PaymentStatus, e.BookingID, e.BookingID))
}

// SignStripePayload returns a Stripe-Signature header value for payload.
func SignStripePayload(t *testing.T, payload []byte, secret string) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload: payload,
		Secret:  secret,
	})
	return signed.Header
}
