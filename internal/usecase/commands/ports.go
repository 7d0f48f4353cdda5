package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

import (
	"context"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

// SessionRequest describes a hosted checkout session for one booking deposit.
type SessionRequest struct {
	BookingID     uuid.UUID
	CustomerEmail string
	Description   string
	Amount        money.Cents
	Metadata      map[string]string
	ExpiresAt     time.Time
	SuccessURL    string
	CancelURL     string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type GatewayEventType string

const (
	EventCheckoutCompleted   GatewayEventType = "checkout_completed"
	EventCheckoutExpired     GatewayEventType = "checkout_expired"
	EventAsyncPaymentFailed  GatewayEventType = "async_payment_failed"
	EventPaymentIntentFailed GatewayEventType = "payment_intent_failed"
	EventOther               GatewayEventType = "other"
)

// GatewayEvent is a verified payment event translated out of the gateway's own types.
type GatewayEvent struct {
	ID              string
	Type            GatewayEventType
	RawType         string
	SessionID       string
	BookingID       *uuid.UUID
	PaymentIntentID string
	AmountTotal     money.Cents
}

type PaymentGateway interface {
	Configured() bool
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (*CheckoutSession, error)
	// VerifyEvent checks the signature header and decodes the payload.
	// A signature mismatch is reported as ErrWebhookSignature.
	VerifyEvent(payload []byte, signature string) (*GatewayEvent, error)
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking) error
	SendSMS(ctx context.Context, to, text string) error
	CreateCalendarEvent(ctx context.Context, b *booking.Booking) error
}

// HoldLocker is a short-lived exclusive claim on (asset, date).
type HoldLocker interface {
	Acquire(ctx context.Context, assetID string, date civil.Date, owner string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, assetID string, date civil.Date, owner string) error
}

type Recorder interface {
	CheckoutCreated(rentalType string)
	CheckoutRejected(reason string)
	PromoRedemption(outcome string)
	WebhookProcessed(eventType, outcome string)
	NotificationFailed(channel string)
	BookingsSwept(count int)
}

type NopRecorder struct{}

func (NopRecorder) CheckoutCreated(string)          {}
func (NopRecorder) CheckoutRejected(string)         {}
func (NopRecorder) PromoRedemption(string)          {}
func (NopRecorder) WebhookProcessed(string, string) {}
func (NopRecorder) NotificationFailed(string)       {}
func (NopRecorder) BookingsSwept(int)               {}
