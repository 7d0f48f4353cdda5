package commands

//go:generate mockgen -source=reconcile.go -destination=../../../tests/mock/commands/reconcile.go -package=commandsmock

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileOutcome string

const (
	OutcomeConfirmed      ReconcileOutcome = "confirmed"
	OutcomeCancelled      ReconcileOutcome = "cancelled"
	OutcomeUnchanged      ReconcileOutcome = "unchanged"
	OutcomeDuplicate      ReconcileOutcome = "duplicate"
	OutcomeRejected       ReconcileOutcome = "rejected"
	OutcomeUnknownBooking ReconcileOutcome = "unknown_booking"
	OutcomePaymentFailed  ReconcileOutcome = "payment_failed"
	OutcomeIgnored        ReconcileOutcome = "ignored"
)

type ReconcileResult struct {
	EventID   string
	Outcome   ReconcileOutcome
	BookingID *uuid.UUID
	Changed   bool
}

type NotifySettings struct {
	Timeout      time.Duration
	AdminPhone   string
	BusinessName string
}

func NotifySettingsFrom(cfg config.Config) NotifySettings {
	return NotifySettings{
		Timeout:      cfg.Notify.Timeout,
		AdminPhone:   strings.TrimSpace(cfg.Notify.AdminPhone),
		BusinessName: cfg.Notify.BusinessName,
	}
}

type ReconciliationCommands interface {
	// HandleWebhook verifies a raw gateway delivery and applies it.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*ReconcileResult, error)
	// HandleGatewayEvent is idempotent; redelivered or out-of-order events are no-ops.
	HandleGatewayEvent(ctx context.Context, ev GatewayEvent) (*ReconcileResult, error)
}

type reconcileUseCaseImpl struct {
	uow      shared.UnitOfWork
	gateway  PaymentGateway
	notifier Notifier
	holds    HoldLocker
	metrics  Recorder
	settings NotifySettings
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReconcileUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	notifier Notifier,
	holds HoldLocker,
	metrics Recorder,
	settings NotifySettings,
	clk clock.Clock,
	logger *slog.Logger,
) ReconciliationCommands {
	return &reconcileUseCaseImpl{
		uow:      uow,
		gateway:  gateway,
		notifier: notifier,
		holds:    holds,
		metrics:  metrics,
		settings: settings,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *reconcileUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (*ReconcileResult, error) {
	ev, err := uc.gateway.VerifyEvent(payload, signature)
	if err != nil {
		uc.metrics.WebhookProcessed("unverified", "rejected")
		if errs.Is(err, ErrWebhookSignature) || errs.Is(err, ErrConfiguration) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrWebhookSignature)
	}
	return uc.HandleGatewayEvent(ctx, *ev)
}

func (uc *reconcileUseCaseImpl) HandleGatewayEvent(ctx context.Context, ev GatewayEvent) (*ReconcileResult, error) {
	var (
		res *ReconcileResult
		err error
	)
	switch ev.Type {
	case EventCheckoutCompleted, EventCheckoutExpired:
		res, err = uc.applyTransition(ctx, ev)
	case EventAsyncPaymentFailed, EventPaymentIntentFailed:
		uc.logger.Warn("payment failed",
			"event_id", ev.ID,
			"event_type", ev.RawType,
			"session_id", ev.SessionID,
			"payment_intent_id", ev.PaymentIntentID)
		res = &ReconcileResult{EventID: ev.ID, Outcome: OutcomePaymentFailed, BookingID: ev.BookingID}
	default:
		uc.logger.Info("ignoring gateway event", "event_id", ev.ID, "event_type", ev.RawType)
		res = &ReconcileResult{EventID: ev.ID, Outcome: OutcomeIgnored}
	}

	if err != nil {
		uc.metrics.WebhookProcessed(string(ev.Type), "error")
		return nil, err
	}
	uc.metrics.WebhookProcessed(string(ev.Type), string(res.Outcome))
	return res, nil
}

func (uc *reconcileUseCaseImpl) applyTransition(ctx context.Context, ev GatewayEvent) (*ReconcileResult, error) {
	res := &ReconcileResult{EventID: ev.ID, BookingID: ev.BookingID}
	if ev.BookingID == nil {
		uc.logger.Warn("gateway event carries no booking reference",
			"event_id", ev.ID,
			"event_type", ev.RawType,
			"session_id", ev.SessionID)
		res.Outcome = OutcomeUnknownBooking
		return res, nil
	}

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		updated = nil
		res.Changed = false

		if ev.ID != "" {
			fresh, rerr := tx.WebhookEvents().Record(ctx, ev.ID, ev.RawType, now)
			if rerr != nil {
				return rerr
			}
			if !fresh {
				res.Outcome = OutcomeDuplicate
				return nil
			}
		}

		b, lerr := tx.Bookings().LockByID(ctx, *ev.BookingID)
		if lerr != nil {
			if infra.IsKind(lerr, infra.KindNotFound) {
				res.Outcome = OutcomeUnknownBooking
				return nil
			}
			return lerr
		}

		from := b.Status()
		var changed bool
		if ev.Type == EventCheckoutCompleted {
			ok, cerr := b.Confirm(ev.PaymentIntentID, now)
			if cerr != nil {
				// A paid session for a voided booking needs an operator.
				uc.logger.Error("payment completed for booking that cannot be confirmed",
					"event_id", ev.ID,
					"booking_id", b.ID().String(),
					"status", string(from),
					"payment_intent_id", ev.PaymentIntentID)
				res.Outcome = OutcomeRejected
				return nil
			}
			changed = ok
		} else {
			changed = b.Expire(now)
		}

		if changed {
			saved, serr := tx.Bookings().SaveTransition(ctx, b, from)
			if serr != nil {
				return serr
			}
			changed = saved
		}

		res.Changed = changed
		switch {
		case !changed:
			res.Outcome = OutcomeUnchanged
		case ev.Type == EventCheckoutCompleted:
			res.Outcome = OutcomeConfirmed
			updated = b
		default:
			res.Outcome = OutcomeCancelled
			updated = b
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrapf(err, "apply gateway event %s", ev.ID)
	}

	uc.logger.Info("gateway event applied",
		"event_id", ev.ID,
		"event_type", ev.RawType,
		"booking_id", ev.BookingID.String(),
		"outcome", string(res.Outcome))

	if updated != nil {
		switch res.Outcome {
		case OutcomeConfirmed:
			uc.notifyConfirmed(ctx, updated)
		case OutcomeCancelled:
			uc.releaseHold(ctx, updated)
		}
	}
	return res, nil
}

// notifyConfirmed fans out confirmation side effects. Failures are logged and
// counted; the booking is already confirmed.
func (uc *reconcileUseCaseImpl) notifyConfirmed(ctx context.Context, b *booking.Booking) {
	base := context.WithoutCancel(ctx)
	calls := map[string]func(context.Context) error{
		"email": func(ctx context.Context) error {
			return uc.notifier.SendBookingConfirmation(ctx, b)
		},
		"calendar": func(ctx context.Context) error {
			return uc.notifier.CreateCalendarEvent(ctx, b)
		},
	}
	if phone := b.Customer().Phone; phone != "" {
		calls["sms_customer"] = func(ctx context.Context) error {
			return uc.notifier.SendSMS(ctx, phone, uc.customerSMS(b))
		}
	}
	if uc.settings.AdminPhone != "" {
		calls["sms_admin"] = func(ctx context.Context) error {
			return uc.notifier.SendSMS(ctx, uc.settings.AdminPhone, adminSMS(b))
		}
	}

	var wg sync.WaitGroup
	for channel, call := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(base, uc.settings.Timeout)
			defer cancel()
			if err := call(callCtx); err != nil {
				uc.metrics.NotificationFailed(channel)
				uc.logger.Error("notification failed",
					"channel", channel,
					"booking_id", b.ID().String(),
					"error", err.Error())
			}
		}()
	}
	wg.Wait()
}

func (uc *reconcileUseCaseImpl) customerSMS(b *booking.Booking) string {
	p := b.Pricing()
	return fmt.Sprintf("%s: your %s rental on %s is confirmed. Deposit %s received, balance %s due on delivery.",
		uc.settings.BusinessName, strings.ToLower(p.RentalType.Label()), b.Event().Date, p.DepositAmount, p.BalanceDue())
}

func adminSMS(b *booking.Booking) string {
	p := b.Pricing()
	return fmt.Sprintf("New booking %s (%s) for %s, %s. Total %s, deposit %s.",
		b.Event().Date, p.RentalType.Label(), b.Customer().Name, b.Event().Address, p.TotalAmount, p.DepositAmount)
}

func (uc *reconcileUseCaseImpl) releaseHold(ctx context.Context, b *booking.Booking) {
	if err := uc.holds.Release(context.WithoutCancel(ctx), b.AssetID(), b.Event().Date, b.ID().String()); err != nil {
		uc.logger.Warn("failed to release hold", "booking_id", b.ID().String(), "error", err.Error())
	}
}
