package payment

import (
	"context"
	"encoding/json"
	"time"

	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// MetadataBookingID is the metadata key carrying the booking reference on
// both the checkout session and its payment intent.
const MetadataBookingID = "bookingId"

type StripeGateway struct {
	client        *stripe.Client
	webhookSecret string
	currency      string
	timeout       time.Duration
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	g := &StripeGateway{
		webhookSecret: cfg.WebhookSecret,
		currency:      cfg.Currency,
		timeout:       cfg.Timeout,
	}
	if cfg.Configured() {
		g.client = stripe.NewClient(cfg.SecretKey)
	}
	return g
}

func (g *StripeGateway) Configured() bool {
	return g.client != nil && g.webhookSecret != ""
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req commands.SessionRequest) (*commands.CheckoutSession, error) {
	if g.client == nil {
		return nil, errs.New("stripe is not configured")
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	params := &stripe.CheckoutSessionCreateParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		ClientReferenceID: stripe.String(req.BookingID.String()),
		Metadata:          req.Metadata,
		PaymentIntentData: &stripe.CheckoutSessionCreatePaymentIntentDataParams{
			Metadata: map[string]string{MetadataBookingID: req.BookingID.String()},
		},
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency: stripe.String(g.currency),
					ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.Amount.Int64()),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	if !req.ExpiresAt.IsZero() {
		params.ExpiresAt = stripe.Int64(req.ExpiresAt.Unix())
	}

	cs, err := g.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to create checkout session for booking %s", req.BookingID)
	}
	return &commands.CheckoutSession{ID: cs.ID, URL: cs.URL}, nil
}

func (g *StripeGateway) VerifyEvent(payload []byte, signature string) (*commands.GatewayEvent, error) {
	if g.webhookSecret == "" {
		return nil, errs.Mark(errs.New("webhook secret is not configured"), commands.ErrConfiguration)
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "stripe signature verification failed"), commands.ErrWebhookSignature)
	}
	return translate(event)
}

// translate maps a verified Stripe event onto the gateway-neutral shape.
func translate(event stripe.Event) (*commands.GatewayEvent, error) {
	ev := &commands.GatewayEvent{
		ID:      event.ID,
		Type:    commands.EventOther,
		RawType: string(event.Type),
	}
	if event.Data == nil {
		return ev, nil
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted,
		stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded,
		stripe.EventTypeCheckoutSessionExpired,
		stripe.EventTypeCheckoutSessionAsyncPaymentFailed:
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, errs.Wrapf(err, "failed to decode checkout session in event %s", event.ID)
		}
		ev.SessionID = cs.ID
		ev.AmountTotal = money.Cents(cs.AmountTotal)
		if cs.PaymentIntent != nil {
			ev.PaymentIntentID = cs.PaymentIntent.ID
		}
		ev.BookingID = bookingRef(cs.Metadata[MetadataBookingID], cs.ClientReferenceID)

		switch event.Type {
		case stripe.EventTypeCheckoutSessionCompleted:
			// Delayed payment methods complete unpaid and settle later.
			if cs.PaymentStatus != stripe.CheckoutSessionPaymentStatusUnpaid {
				ev.Type = commands.EventCheckoutCompleted
			}
		case stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
			ev.Type = commands.EventCheckoutCompleted
		case stripe.EventTypeCheckoutSessionExpired:
			ev.Type = commands.EventCheckoutExpired
		default:
			ev.Type = commands.EventAsyncPaymentFailed
		}

	case stripe.EventTypePaymentIntentPaymentFailed:
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return nil, errs.Wrapf(err, "failed to decode payment intent in event %s", event.ID)
		}
		ev.Type = commands.EventPaymentIntentFailed
		ev.PaymentIntentID = pi.ID
		ev.AmountTotal = money.Cents(pi.Amount)
		ev.BookingID = bookingRef(pi.Metadata[MetadataBookingID], "")
	}
	return ev, nil
}

func bookingRef(candidates ...string) *uuid.UUID {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if id, err := uuid.Parse(c); err == nil {
			return &id
		}
	}
	return nil
}
