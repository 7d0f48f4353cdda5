package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	AssetID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	EventDate       civil.Date
	EventTime       *string
	EventAddress    string
	PostalCode      string
	RentalType      pricing.RentalType
	AddOns          []pricing.AddOnSelection
	GuestsCount     *int
	SpecialRequests *string
	PromoCode       *string
	RequirePromo    bool
}

type CheckoutResult struct {
	CheckoutURL  string
	SessionID    string
	BookingID    uuid.UUID
	Pricing      booking.Pricing
	PromoApplied bool
	// PromoMessage explains why a supplied code was not applied.
	PromoMessage string
}

type CheckoutSettings struct {
	DepositPercent int
	SessionTTL     time.Duration
	PublicBaseURL  string
}

func CheckoutSettingsFrom(cfg config.Config) CheckoutSettings {
	return CheckoutSettings{
		DepositPercent: cfg.Booking.DepositPercent,
		SessionTTL:     cfg.Booking.SessionTTL,
		PublicBaseURL:  strings.TrimRight(cfg.Server.PublicBaseURL, "/"),
	}
}

type BookingCommands interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	engine   *pricing.Engine
	policy   *queries.AvailabilityPolicy
	gateway  PaymentGateway
	holds    HoldLocker
	metrics  Recorder
	settings CheckoutSettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	engine *pricing.Engine,
	policy *queries.AvailabilityPolicy,
	gateway PaymentGateway,
	holds HoldLocker,
	metrics Recorder,
	settings CheckoutSettings,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &checkoutUseCaseImpl{
		uow:      uow,
		engine:   engine,
		policy:   policy,
		gateway:  gateway,
		holds:    holds,
		metrics:  metrics,
		settings: settings,
		clock:    clk,
		logger:   logger,
	}
}

// promoCandidate is a code that passed validation and still has to be redeemed.
type promoCandidate struct {
	id       uuid.UUID
	code     string
	discount money.Cents
}

func (uc *checkoutUseCaseImpl) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if !uc.gateway.Configured() {
		uc.metrics.CheckoutRejected("configuration")
		return nil, ErrConfiguration
	}
	if req.EventDate.IsZero() {
		return nil, NewValidationError("eventDate", booking.ErrEventDateRequired.Error())
	}

	assetID := uc.policy.AssetOrDefault(req.AssetID)
	bookingID := uuid.New()
	owner := bookingID.String()

	acquired, err := uc.holds.Acquire(ctx, assetID, req.EventDate, owner, uc.policy.HoldWindow())
	switch {
	case err != nil:
		// The pending row still acts as a soft hold.
		uc.logger.Warn("hold lock unavailable, continuing without it",
			"asset_id", assetID,
			"event_date", req.EventDate.String(),
			"error", err.Error())
	case !acquired:
		uc.metrics.CheckoutRejected("held")
		return nil, &UnavailableError{Reason: availability.ReasonHeld}
	}

	result, err := uc.checkoutHeld(ctx, req, assetID, bookingID)
	if err != nil {
		if acquired {
			uc.releaseHold(assetID, req.EventDate, owner)
		}
		return nil, err
	}
	return result, nil
}

func (uc *checkoutUseCaseImpl) checkoutHeld(ctx context.Context, req CheckoutRequest, assetID string, bookingID uuid.UUID) (*CheckoutResult, error) {
	reads := uc.uow.CommandReads()

	day, err := uc.policy.Check(ctx, reads, req.EventDate, assetID)
	if err != nil {
		return nil, errs.Wrap(err, "check availability")
	}
	if !day.Available() {
		uc.metrics.CheckoutRejected(string(day.Status))
		return nil, &UnavailableError{Reason: day.Reason}
	}

	catalog, err := reads.ActiveAddOns(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load add-on catalog")
	}
	quote := uc.engine.Price(req.RentalType, req.PostalCode, req.AddOns, catalog)

	now := uc.clock.Now()
	candidate, promoMessage, err := uc.resolvePromo(ctx, reads, req, quote.Subtotal, now)
	if err != nil {
		return nil, err
	}

	plain, err := uc.newBooking(bookingID, assetID, req, quote, nil, now)
	if err != nil {
		return nil, err
	}
	discounted := plain
	if candidate != nil {
		discounted, err = uc.newBooking(bookingID, assetID, req, quote, candidate, now)
		if err != nil {
			return nil, err
		}
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = plain
		if candidate == nil {
			return tx.Bookings().Create(ctx, plain)
		}

		redeemed, rerr := tx.Promos().Redeem(ctx, candidate.id)
		if rerr != nil {
			return rerr
		}
		if redeemed {
			created = discounted
		} else if req.RequirePromo {
			return &PromoError{Message: promo.Message(promo.ErrUsageLimitReached)}
		}
		return tx.Bookings().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	if candidate != nil {
		if created == discounted {
			uc.metrics.PromoRedemption("applied")
		} else {
			uc.metrics.PromoRedemption("exhausted")
			promoMessage = promo.Message(promo.ErrUsageLimitReached)
		}
	}

	session, err := uc.gateway.CreateCheckoutSession(ctx, uc.sessionRequest(created))
	if err != nil {
		uc.logger.Error("checkout session creation failed; booking left pending",
			"booking_id", created.ID().String(),
			"error", err.Error())
		uc.metrics.CheckoutRejected("gateway")
		return nil, errs.Mark(errs.Wrap(err, "create checkout session"), ErrPaymentGateway)
	}

	uc.attachSession(ctx, created, session.ID)
	uc.metrics.CheckoutCreated(created.Pricing().RentalType.String())

	uc.logger.Info("checkout created",
		"booking_id", created.ID().String(),
		"asset_id", assetID,
		"event_date", req.EventDate.String(),
		"total_cents", created.Pricing().TotalAmount.Int64(),
		"deposit_cents", created.Pricing().DepositAmount.Int64())

	return &CheckoutResult{
		CheckoutURL:  session.URL,
		SessionID:    session.ID,
		BookingID:    created.ID(),
		Pricing:      created.Pricing(),
		PromoApplied: created.Pricing().PromoCode != nil,
		PromoMessage: promoMessage,
	}, nil
}

// resolvePromo returns a redeemable candidate, or the customer message when the
// supplied code does not apply.
func (uc *checkoutUseCaseImpl) resolvePromo(ctx context.Context, reads shared.PromoReader, req CheckoutRequest, subtotal money.Cents, now time.Time) (*promoCandidate, string, error) {
	if req.PromoCode == nil || strings.TrimSpace(*req.PromoCode) == "" {
		return nil, "", nil
	}

	code := promo.NormalizeCode(*req.PromoCode)
	p, err := reads.PromoByCode(ctx, code)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, "", errs.Wrap(err, "load promo code")
	}

	verdict, verr := queries.CheckPromo(p, now, subtotal)
	if verr != nil {
		if req.RequirePromo {
			uc.metrics.CheckoutRejected("promo")
			return nil, "", &PromoError{Message: verdict.Error}
		}
		uc.metrics.PromoRedemption("rejected")
		return nil, verdict.Error, nil
	}

	return &promoCandidate{id: p.ID(), code: p.Code().String(), discount: verdict.DiscountAmount}, "", nil
}

func (uc *checkoutUseCaseImpl) newBooking(id uuid.UUID, assetID string, req CheckoutRequest, quote pricing.Quote, candidate *promoCandidate, now time.Time) (*booking.Booking, error) {
	var discount money.Cents
	var code *string
	if candidate != nil {
		discount = candidate.discount
		c := candidate.code
		code = &c
	}

	totals, err := pricing.Finalize(quote, discount, uc.settings.DepositPercent)
	if err != nil {
		return nil, errs.Wrap(err, "finalize pricing")
	}

	b, err := booking.NewBooking(
		id,
		assetID,
		booking.Customer{Name: req.CustomerName, Email: req.CustomerEmail, Phone: req.CustomerPhone},
		booking.Event{
			Date:            req.EventDate,
			StartTime:       req.EventTime,
			Address:         req.EventAddress,
			PostalCode:      pricing.NormalizePostalCode(req.PostalCode),
			GuestsCount:     req.GuestsCount,
			SpecialRequests: req.SpecialRequests,
		},
		booking.PricingFrom(quote, totals, code),
		now,
	)
	if err != nil {
		return nil, asValidationError(err)
	}
	return b, nil
}

// sessionRequest stamps the expiry from the clock at call time. The redemption
// transaction runs before this and Stripe counts from session creation.
func (uc *checkoutUseCaseImpl) sessionRequest(b *booking.Booking) SessionRequest {
	p := b.Pricing()
	date := b.Event().Date.String()
	return SessionRequest{
		BookingID:     b.ID(),
		CustomerEmail: b.Customer().Email,
		Description:   fmt.Sprintf("Deposit — %s rental on %s", p.RentalType.Label(), date),
		Amount:        p.DepositAmount,
		Metadata: map[string]string{
			"bookingId":     b.ID().String(),
			"eventDate":     date,
			"assetId":       b.AssetID(),
			"rentalType":    p.RentalType.String(),
			"totalAmount":   fmt.Sprintf("%.2f", p.TotalAmount.Dollars()),
			"depositAmount": fmt.Sprintf("%.2f", p.DepositAmount.Dollars()),
		},
		ExpiresAt:  uc.clock.Now().Add(max(uc.settings.SessionTTL, config.MinSessionTTL)),
		SuccessURL: uc.settings.PublicBaseURL + "/booking/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  uc.settings.PublicBaseURL + "/booking/cancelled?booking_id=" + url.QueryEscape(b.ID().String()),
	}
}

// attachSession stores the session reference. Reconciliation keys on the
// booking id in the session metadata, so a failure here is logged only.
func (uc *checkoutUseCaseImpl) attachSession(ctx context.Context, b *booking.Booking, sessionID string) {
	if _, err := b.AttachSession(sessionID, uc.clock.Now()); err != nil {
		uc.logger.Error("attach session rejected", "booking_id", b.ID().String(), "error", err.Error())
		return
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().AttachSession(ctx, b)
	})
	if err != nil {
		uc.logger.Error("failed to persist payment session reference",
			"booking_id", b.ID().String(),
			"session_id", sessionID,
			"error", err.Error())
	}
}

func (uc *checkoutUseCaseImpl) releaseHold(assetID string, date civil.Date, owner string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := uc.holds.Release(ctx, assetID, date, owner); err != nil {
		uc.logger.Warn("failed to release hold", "asset_id", assetID, "event_date", date.String(), "error", err.Error())
	}
}
