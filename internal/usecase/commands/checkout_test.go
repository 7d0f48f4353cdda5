//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/infra/hold"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/pkg/config"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/tests/common/builder"
	"bounce-booking/tests/common/memstore"
	commandsmock "bounce-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, time.May, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	engine, err := pricing.NewEngine(pricing.Settings{
		Rates: map[pricing.RentalType]money.Cents{
			pricing.RentalDaily:   15000,
			pricing.RentalWeekend: 25000,
			pricing.RentalWeekly:  60000,
		},
		LocalFee:   2000,
		OutsideFee: 4000,
		LocalZips:  []string{"75001", "75002"},
	})
	require.NoError(t, err)
	return engine
}

func newTestPolicy(t *testing.T, clk clock.Clock) *queries.AvailabilityPolicy {
	t.Helper()
	policy, err := queries.NewAvailabilityPolicy(config.NewTestConfig(), clk)
	require.NoError(t, err)
	return policy
}

// plainCheckout is scenario A: daily rental, local zone, no add-ons, no promo.
func plainCheckout(date civil.Date) commands.CheckoutRequest {
	req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.EventDate = date
		b.AddOns = nil
	}).BuildCheckoutCommand()
	return req
}

func newPromo(t *testing.T, code string, percent float64, maxUses *int) *promo.PromoCode {
	t.Helper()
	discount, err := promo.NewPercentageDiscount(percent)
	require.NoError(t, err)
	p, err := promo.NewPromoCode(uuid.New(), code, discount, nil, 0, maxUses, nil, nil)
	require.NoError(t, err)
	return p
}

type CheckoutTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	gateway  *commandsmock.MockPaymentGateway
	store    *memstore.Store
	clock    *clock.MockClock
	eventDay civil.Date
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.gateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(testNow)
	s.eventDay = civil.New(2030, time.June, 15)

	s.gateway.EXPECT().Configured().Return(true).AnyTimes()
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) useCase(holds commands.HoldLocker) commands.BookingCommands {
	cfg := config.NewTestConfig()
	return commands.NewCheckoutUseCase(
		s.store,
		newTestEngine(s.T()),
		newTestPolicy(s.T(), s.clock),
		s.gateway,
		holds,
		commands.NopRecorder{},
		commands.CheckoutSettingsFrom(cfg),
		s.clock,
		discardLogger(),
	)
}

// expectSessions answers every session request with an id derived from the booking.
func (s *CheckoutTestSuite) expectSessions() {
	s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.SessionRequest) (*commands.CheckoutSession, error) {
			id := "cs_test_" + req.BookingID.String()
			return &commands.CheckoutSession{ID: id, URL: "https://checkout.stripe.com/c/pay/" + id}, nil
		}).AnyTimes()
}

func (s *CheckoutTestSuite) TestScenarioPricing() {
	s.Run("daily local rental without promo", func() {
		var sent commands.SessionRequest
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.SessionRequest) (*commands.CheckoutSession, error) {
				sent = req
				return &commands.CheckoutSession{ID: "cs_test_a", URL: "https://checkout.stripe.com/c/pay/cs_test_a"}, nil
			}).Times(1)

		res, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, plainCheckout(s.eventDay))
		s.Require().NoError(err)

		p := res.Pricing
		s.Equal(money.Cents(15000), p.BasePrice)
		s.Equal(money.Cents(2000), p.DeliveryFee)
		s.Equal(money.Cents(17000), p.TotalAmount)
		s.Equal(money.Cents(8500), p.DepositAmount)
		s.Equal(money.Cents(8500), p.BalanceDue())
		s.False(res.PromoApplied)
		s.Equal("cs_test_a", res.SessionID)

		s.Equal(money.Cents(8500), sent.Amount)
		s.Equal(res.BookingID.String(), sent.Metadata["bookingId"])
		s.Equal(testNow.Add(31*time.Minute), sent.ExpiresAt)
		s.Contains(sent.CancelURL, res.BookingID.String())

		stored, ok := s.store.Booking(res.BookingID)
		s.Require().True(ok)
		s.Equal(booking.StatusPending, stored.Status())
		s.Equal(booking.PaymentPending, stored.PaymentStatus())
		s.Require().NotNil(stored.PaymentSessionID())
		s.Equal("cs_test_a", *stored.PaymentSessionID())
	})

	s.Run("percentage promo is applied and redeemed once", func() {
		p := newPromo(s.T(), "WELCOME10", 10, nil)
		s.store.PutPromo(p)
		s.expectSessions()

		req := plainCheckout(s.eventDay.AddDays(1))
		code := " welcome10 "
		req.PromoCode = &code

		res, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, req)
		s.Require().NoError(err)

		s.True(res.PromoApplied)
		s.Empty(res.PromoMessage)
		s.Equal(money.Cents(1700), res.Pricing.DiscountAmount)
		s.Equal(money.Cents(15300), res.Pricing.TotalAmount)
		s.Equal(money.Cents(7650), res.Pricing.DepositAmount)
		s.Require().NotNil(res.Pricing.PromoCode)
		s.Equal("WELCOME10", *res.Pricing.PromoCode)

		stored, _ := s.store.Promo(p.ID())
		s.Equal(1, stored.UsesCount())
	})
}

func (s *CheckoutTestSuite) TestAddOns() {
	generator, err := addon.NewAddOn(uuid.New(), "Generator", "power", 1500, 2, true)
	s.Require().NoError(err)
	retired, err := addon.NewAddOn(uuid.New(), "Popcorn Machine", "concessions", 3000, 1, false)
	s.Require().NoError(err)
	s.store.PutAddOn(generator)
	s.store.PutAddOn(retired)
	s.expectSessions()

	req := plainCheckout(s.eventDay)
	req.AddOns = []pricing.AddOnSelection{
		{ID: generator.ID(), Quantity: 5},
		{ID: retired.ID(), Quantity: 1},
		{ID: uuid.New(), Quantity: 1},
	}

	res, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, req)
	s.Require().NoError(err)

	s.Require().Len(res.Pricing.AddOns, 1)
	s.Equal(2, res.Pricing.AddOns[0].Quantity)
	s.Equal(money.Cents(3000), res.Pricing.AddOnsTotal)
	s.Equal(money.Cents(20000), res.Pricing.TotalAmount)
}

func (s *CheckoutTestSuite) TestSessionExpiry() {
	s.Run("expiry counts from the gateway call and never undercuts the minimum", func() {
		p := newPromo(s.T(), "LATE5", 5, nil)
		s.store.PutPromo(p)

		// Redemption bookkeeping lands between pricing and the gateway call.
		recorder := commandsmock.NewMockRecorder(s.mockCtrl)
		recorder.EXPECT().PromoRedemption("applied").Do(func(string) {
			s.clock.Add(2 * time.Minute)
		}).Times(1)
		recorder.EXPECT().CheckoutCreated(gomock.Any()).AnyTimes()

		var sent commands.SessionRequest
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.SessionRequest) (*commands.CheckoutSession, error) {
				sent = req
				return &commands.CheckoutSession{ID: "cs_test_late", URL: "https://checkout.stripe.com/c/pay/cs_test_late"}, nil
			}).Times(1)

		settings := commands.CheckoutSettingsFrom(config.NewTestConfig())
		settings.SessionTTL = 30 * time.Minute
		uc := commands.NewCheckoutUseCase(s.store, newTestEngine(s.T()), newTestPolicy(s.T(), s.clock), s.gateway,
			hold.NoopLocker{}, recorder, settings, s.clock, discardLogger())

		req := plainCheckout(s.eventDay.AddDays(6))
		code := "LATE5"
		req.PromoCode = &code

		_, err := uc.CreateCheckout(s.ctx, req)
		s.Require().NoError(err)

		s.Equal(testNow.Add(2*time.Minute+config.MinSessionTTL), sent.ExpiresAt)
	})
}

func (s *CheckoutTestSuite) TestPromoRejections() {
	s.Run("unknown optional code is ignored with a message", func() {
		s.expectSessions()
		req := plainCheckout(s.eventDay)
		code := "NOPE"
		req.PromoCode = &code

		res, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, req)
		s.Require().NoError(err)
		s.False(res.PromoApplied)
		s.Equal("Invalid promo code", res.PromoMessage)
		s.Equal(money.Cents(17000), res.Pricing.TotalAmount)
	})

	s.Run("required code that fails validation rejects checkout", func() {
		expired := testNow.Add(-time.Hour)
		discount, err := promo.NewFixedDiscount(500)
		s.Require().NoError(err)
		p, err := promo.NewPromoCode(uuid.New(), "SPRING", discount, nil, 0, nil, nil, &expired)
		s.Require().NoError(err)
		s.store.PutPromo(p)

		req := plainCheckout(s.eventDay.AddDays(2))
		code := "SPRING"
		req.PromoCode = &code
		req.RequirePromo = true
		before := len(s.store.Bookings())

		_, err = s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, req)

		var promoErr *commands.PromoError
		s.Require().ErrorAs(err, &promoErr)
		s.Equal("This promo code has expired", promoErr.Message)
		s.Len(s.store.Bookings(), before)
	})
}

func (s *CheckoutTestSuite) TestAvailabilityRejections() {
	s.Run("date already confirmed", func() {
		confirmed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.EventDate = s.eventDay
			b.Status = booking.StatusConfirmed
		}).BuildDomain()
		s.store.PutBooking(confirmed)

		_, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, plainCheckout(s.eventDay))

		var unav *commands.UnavailableError
		s.Require().ErrorAs(err, &unav)
		s.Equal(availability.ReasonBooked, unav.Reason)
	})

	s.Run("date in the past", func() {
		_, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, plainCheckout(civil.New(2030, time.April, 30)))

		var unav *commands.UnavailableError
		s.Require().ErrorAs(err, &unav)
		s.Equal(availability.ReasonPast, unav.Reason)
	})

	s.Run("date blocked for the asset", func() {
		asset := "castle-classic"
		bd, err := availability.NewBlockedDate(s.eventDay.AddDays(3), &asset, "Repairs", testNow)
		s.Require().NoError(err)
		s.store.PutBlockedDate(bd)

		_, err = s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, plainCheckout(s.eventDay.AddDays(3)))

		var unav *commands.UnavailableError
		s.Require().ErrorAs(err, &unav)
		s.Equal("Repairs", unav.Reason)
	})

	s.Run("pending booking holds the date until the window lapses", func() {
		s.expectSessions()
		date := s.eventDay.AddDays(4)
		uc := s.useCase(hold.NoopLocker{})

		_, err := uc.CreateCheckout(s.ctx, plainCheckout(date))
		s.Require().NoError(err)

		_, err = uc.CreateCheckout(s.ctx, plainCheckout(date))
		s.Require().True(errs.Is(err, commands.ErrUnavailable))

		s.clock.Add(31 * time.Minute)
		_, err = uc.CreateCheckout(s.ctx, plainCheckout(date))
		s.NoError(err)
	})
}

func (s *CheckoutTestSuite) TestHoldLock() {
	holds := commandsmock.NewMockHoldLocker(s.mockCtrl)

	s.Run("rejected while another checkout holds the date", func() {
		holds.EXPECT().Acquire(gomock.Any(), "castle-classic", s.eventDay, gomock.Any(), 31*time.Minute).Return(false, nil).Times(1)

		_, err := s.useCase(holds).CreateCheckout(s.ctx, plainCheckout(s.eventDay))

		var unav *commands.UnavailableError
		s.Require().ErrorAs(err, &unav)
		s.Equal(availability.ReasonHeld, unav.Reason)
		s.Empty(s.store.Bookings())
	})

	s.Run("lock store outage does not block checkout", func() {
		holds.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("redis: connection refused")).Times(1)
		s.expectSessions()

		_, err := s.useCase(holds).CreateCheckout(s.ctx, plainCheckout(s.eventDay))
		s.NoError(err)
	})

	s.Run("hold is released when checkout fails", func() {
		date := s.eventDay.AddDays(1)
		holds.EXPECT().Acquire(gomock.Any(), gomock.Any(), date, gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
		holds.EXPECT().Release(gomock.Any(), "castle-classic", date, gomock.Any()).Return(nil).Times(1)

		req := plainCheckout(date)
		req.CustomerEmail = "not-an-email"
		_, err := s.useCase(holds).CreateCheckout(s.ctx, req)

		var verr *commands.ValidationError
		s.Require().ErrorAs(err, &verr)
		s.Contains(verr.Fields, "customerEmail")
	})
}

func (s *CheckoutTestSuite) TestGatewayFailures() {
	s.Run("not configured", func() {
		gateway := commandsmock.NewMockPaymentGateway(s.mockCtrl)
		gateway.EXPECT().Configured().Return(false).Times(1)
		uc := commands.NewCheckoutUseCase(s.store, newTestEngine(s.T()), newTestPolicy(s.T(), s.clock), gateway,
			hold.NoopLocker{}, commands.NopRecorder{}, commands.CheckoutSettingsFrom(config.NewTestConfig()), s.clock, discardLogger())

		_, err := uc.CreateCheckout(s.ctx, plainCheckout(s.eventDay))
		s.True(errs.Is(err, commands.ErrConfiguration))
		s.Empty(s.store.Bookings())
	})

	s.Run("session creation fails and booking stays pending without a session", func() {
		s.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("stripe: api unavailable")).Times(1)

		_, err := s.useCase(hold.NoopLocker{}).CreateCheckout(s.ctx, plainCheckout(s.eventDay))
		s.True(errs.Is(err, commands.ErrPaymentGateway))

		all := s.store.Bookings()
		s.Require().Len(all, 1)
		s.Equal(booking.StatusPending, all[0].Status())
		s.Nil(all[0].PaymentSessionID())
	})
}

func TestCheckoutConcurrentPromoRedemption(t *testing.T) {
	run := func(t *testing.T, requirePromo bool) ([]*commands.CheckoutResult, []error, *memstore.Store, uuid.UUID) {
		ctrl := gomock.NewController(t)
		gateway := commandsmock.NewMockPaymentGateway(ctrl)
		gateway.EXPECT().Configured().Return(true).AnyTimes()
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.SessionRequest) (*commands.CheckoutSession, error) {
				return &commands.CheckoutSession{ID: "cs_" + req.BookingID.String(), URL: "https://checkout.stripe.com"}, nil
			}).AnyTimes()

		store := memstore.New()
		maxUses := 1
		p := newPromo(t, "ONCE", 10, &maxUses)
		store.PutPromo(p)

		clk := clock.NewMockClock(testNow)
		uc := commands.NewCheckoutUseCase(store, newTestEngine(t), newTestPolicy(t, clk), gateway, hold.NoopLocker{},
			commands.NopRecorder{}, commands.CheckoutSettingsFrom(config.NewTestConfig()), clk, discardLogger())

		const n = 2
		results := make([]*commands.CheckoutResult, n)
		failures := make([]error, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := plainCheckout(civil.New(2030, time.June, 10+i))
				code := "ONCE"
				req.PromoCode = &code
				req.RequirePromo = requirePromo
				results[i], failures[i] = uc.CreateCheckout(context.Background(), req)
			}()
		}
		wg.Wait()
		return results, failures, store, p.ID()
	}

	t.Run("optional code: one booking discounted, the other at full price", func(t *testing.T) {
		results, failures, store, promoID := run(t, false)

		applied := 0
		for i := range results {
			require.NoError(t, failures[i])
			if results[i].PromoApplied {
				applied++
				assert.Equal(t, money.Cents(15300), results[i].Pricing.TotalAmount)
			} else {
				assert.Equal(t, "This promo code has reached its usage limit", results[i].PromoMessage)
				assert.Equal(t, money.Cents(17000), results[i].Pricing.TotalAmount)
			}
		}
		assert.Equal(t, 1, applied)

		p, _ := store.Promo(promoID)
		assert.Equal(t, 1, p.UsesCount())
	})

	t.Run("required code: only one checkout succeeds", func(t *testing.T) {
		results, failures, store, promoID := run(t, true)

		succeeded := 0
		for i := range results {
			if failures[i] == nil {
				succeeded++
				assert.True(t, results[i].PromoApplied)
				continue
			}
			var promoErr *commands.PromoError
			assert.ErrorAs(t, failures[i], &promoErr)
		}
		assert.Equal(t, 1, succeeded)
		assert.Len(t, store.Bookings(), 1)

		p, _ := store.Promo(promoID)
		assert.Equal(t, 1, p.UsesCount())
	})
}
