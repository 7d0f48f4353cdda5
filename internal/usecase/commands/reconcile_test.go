//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra/hold"
	"bounce-booking/internal/infra/payment"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/tests/common/builder"
	"bounce-booking/tests/common/helper"
	"bounce-booking/tests/common/memstore"
	commandsmock "bounce-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "whsec_reconcile_test"

type ReconcileTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	notifier *commandsmock.MockNotifier
	store    *memstore.Store
	clock    *clock.MockClock
	uc       commands.ReconciliationCommands
}

func (s *ReconcileTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.notifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(testNow.Add(10 * time.Minute))
	s.uc = s.newUseCase(commands.NopRecorder{}, "+15555550199")
}

func (s *ReconcileTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReconcileSuite(t *testing.T) {
	suite.Run(t, new(ReconcileTestSuite))
}

func (s *ReconcileTestSuite) newUseCase(rec commands.Recorder, adminPhone string) commands.ReconciliationCommands {
	gateway := payment.NewStripeGateway(config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: webhookSecret,
		Currency:      "usd",
	})
	settings := commands.NotifySettings{Timeout: time.Second, AdminPhone: adminPhone, BusinessName: "Bounce House Rentals"}
	return commands.NewReconcileUseCase(s.store, gateway, s.notifier, hold.NoopLocker{}, rec, settings, s.clock, discardLogger())
}

func (s *ReconcileTestSuite) pendingBooking() *booking.Booking {
	session := "cs_test_1"
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.SessionID = &session
		b.CreatedAt = testNow
	}).BuildDomain()
	s.store.PutBooking(b)
	return b
}

func (s *ReconcileTestSuite) deliver(ev helper.CheckoutSessionEvent) (*commands.ReconcileResult, error) {
	payload := ev.Payload()
	return s.uc.HandleWebhook(s.ctx, payload, helper.SignStripePayload(s.T(), payload, webhookSecret))
}

func (s *ReconcileTestSuite) expectAllNotifications(times int) {
	s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(nil).Times(times)
	s.notifier.EXPECT().CreateCalendarEvent(gomock.Any(), gomock.Any()).Return(nil).Times(times)
	// Customer and admin texts.
	s.notifier.EXPECT().SendSMS(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2 * times)
}

func (s *ReconcileTestSuite) TestCompletedConfirmsBooking() {
	b := s.pendingBooking()
	s.expectAllNotifications(1)

	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_paid",
		Type:          "checkout.session.completed",
		PaymentStatus: "paid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)

	s.Equal(commands.OutcomeConfirmed, res.Outcome)
	s.True(res.Changed)

	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusConfirmed, stored.Status())
	s.Equal(booking.PaymentDepositPaid, stored.PaymentStatus())
	s.Require().NotNil(stored.DepositPaidAt())
	s.Equal(s.clock.Now(), *stored.DepositPaidAt())
	s.Require().NotNil(stored.PaymentIntentID())
	s.Equal("pi_123", *stored.PaymentIntentID())
}

func (s *ReconcileTestSuite) TestRedeliveryIsIdempotent() {
	b := s.pendingBooking()
	s.expectAllNotifications(1)
	ev := helper.CheckoutSessionEvent{
		EventID:       "evt_dup",
		Type:          "checkout.session.completed",
		PaymentStatus: "paid",
		BookingID:     b.ID(),
	}

	first, err := s.deliver(ev)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeConfirmed, first.Outcome)

	second, err := s.deliver(ev)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeDuplicate, second.Outcome)
	s.False(second.Changed)

	// A different event id for the same payment finds nothing to change.
	ev.EventID = "evt_dup_2"
	third, err := s.deliver(ev)
	s.Require().NoError(err)
	s.Equal(commands.OutcomeUnchanged, third.Outcome)

	s.Equal(2, s.store.WebhookEventCount())
}

func (s *ReconcileTestSuite) TestConcurrentDeliveriesConfirmOnce() {
	b := s.pendingBooking()
	s.expectAllNotifications(1)

	var wg sync.WaitGroup
	outcomes := make([]commands.ReconcileOutcome, 4)
	for i := range outcomes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := s.deliver(helper.CheckoutSessionEvent{
				EventID:       "evt_race",
				Type:          "checkout.session.completed",
				PaymentStatus: "paid",
				BookingID:     b.ID(),
			})
			if err == nil {
				outcomes[i] = res.Outcome
			}
		}()
	}
	wg.Wait()

	confirmed := 0
	for _, o := range outcomes {
		if o == commands.OutcomeConfirmed {
			confirmed++
		} else {
			s.Equal(commands.OutcomeDuplicate, o)
		}
	}
	s.Equal(1, confirmed)
}

func (s *ReconcileTestSuite) TestExpiredAfterConfirmedIsNoOp() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusConfirmed
	}).BuildDomain()
	s.store.PutBooking(b)

	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_stale_expiry",
		Type:          "checkout.session.expired",
		PaymentStatus: "unpaid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)

	s.Equal(commands.OutcomeUnchanged, res.Outcome)
	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusConfirmed, stored.Status())
}

func (s *ReconcileTestSuite) TestExpiredCancelsPending() {
	b := s.pendingBooking()

	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_expired",
		Type:          "checkout.session.expired",
		PaymentStatus: "unpaid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)

	s.Equal(commands.OutcomeCancelled, res.Outcome)
	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusCancelled, stored.Status())
	s.Equal(booking.PaymentPending, stored.PaymentStatus())
}

func (s *ReconcileTestSuite) TestCompletedForCancelledBookingIsRejected() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Status = booking.StatusCancelled
	}).BuildDomain()
	s.store.PutBooking(b)

	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_late_payment",
		Type:          "checkout.session.completed",
		PaymentStatus: "paid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)

	s.Equal(commands.OutcomeRejected, res.Outcome)
	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusCancelled, stored.Status())
}

func (s *ReconcileTestSuite) TestUnpaidCompletionWaitsForAsyncResult() {
	b := s.pendingBooking()

	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_unpaid",
		Type:          "checkout.session.completed",
		PaymentStatus: "unpaid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)
	s.Equal(commands.OutcomeIgnored, res.Outcome)

	s.expectAllNotifications(1)
	res, err = s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_async_ok",
		Type:          "checkout.session.async_payment_succeeded",
		PaymentStatus: "paid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)
	s.Equal(commands.OutcomeConfirmed, res.Outcome)
}

func (s *ReconcileTestSuite) TestAsyncFailureLeavesBookingPending() {
	b := s.pendingBooking()

	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_async_fail",
		Type:          "checkout.session.async_payment_failed",
		PaymentStatus: "unpaid",
		BookingID:     b.ID(),
	})
	s.Require().NoError(err)

	s.Equal(commands.OutcomePaymentFailed, res.Outcome)
	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusPending, stored.Status())
}

func (s *ReconcileTestSuite) TestUnknownBooking() {
	res, err := s.deliver(helper.CheckoutSessionEvent{
		EventID:       "evt_orphan",
		Type:          "checkout.session.completed",
		PaymentStatus: "paid",
		BookingID:     uuid.New(),
	})
	s.Require().NoError(err)
	s.Equal(commands.OutcomeUnknownBooking, res.Outcome)
}

func (s *ReconcileTestSuite) TestSignatureFailures() {
	payload := helper.CheckoutSessionEvent{Type: "checkout.session.completed", PaymentStatus: "paid", BookingID: uuid.New()}.Payload()

	s.Run("wrong secret", func() {
		_, err := s.uc.HandleWebhook(s.ctx, payload, helper.SignStripePayload(s.T(), payload, "whsec_other"))
		s.True(errs.Is(err, commands.ErrWebhookSignature))
	})

	s.Run("tampered payload", func() {
		sig := helper.SignStripePayload(s.T(), payload, webhookSecret)
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = ' '
		_, err := s.uc.HandleWebhook(s.ctx, tampered, sig)
		s.True(errs.Is(err, commands.ErrWebhookSignature))
	})

	s.Zero(s.store.WebhookEventCount())
}

func (s *ReconcileTestSuite) TestNotificationFailuresDoNotFailReconciliation() {
	recorder := commandsmock.NewMockRecorder(s.mockCtrl)
	uc := s.newUseCase(recorder, "")
	b := s.pendingBooking()

	s.notifier.EXPECT().SendBookingConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421 try again later")).Times(1)
	s.notifier.EXPECT().CreateCalendarEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	s.notifier.EXPECT().SendSMS(gomock.Any(), "+15555550100", gomock.Any()).Return(nil).Times(1)
	recorder.EXPECT().NotificationFailed("email").Times(1)
	recorder.EXPECT().WebhookProcessed(string(commands.EventCheckoutCompleted), string(commands.OutcomeConfirmed)).Times(1)

	res, err := uc.HandleGatewayEvent(s.ctx, commands.GatewayEvent{
		ID:              "evt_notify",
		Type:            commands.EventCheckoutCompleted,
		RawType:         "checkout.session.completed",
		SessionID:       "cs_test_1",
		BookingID:       func() *uuid.UUID { id := b.ID(); return &id }(),
		PaymentIntentID: "pi_notify",
	})
	s.Require().NoError(err)
	s.Equal(commands.OutcomeConfirmed, res.Outcome)

	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusConfirmed, stored.Status())
}
