//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"bounce-booking/internal/handler/api"
	"bounce-booking/internal/handler/dto/request"
	"bounce-booking/internal/handler/dto/response"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/tests/common/builder"
	"bounce-booking/tests/common/dbtest"
	"bounce-booking/tests/common/helper"
	"bounce-booking/tests/common/httptest"
	"bounce-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL      = "/api/bookings/checkout"
	summaryURL       = "/api/bookings/%s/summary"
	dateURL          = "/api/availability/date?date=%s"
	promoURL         = "/api/promo/validate"
	webhookURL       = "/api/webhooks/stripe"
	adminBookingsURL = "/api/admin/bookings"
	adminBlockedURL  = "/api/admin/blocked-dates"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// eventDate stays in the future whenever the suite runs.
func eventDate(offsetDays int) civil.Date {
	return civil.DateOf(time.Now().UTC()).AddDays(60 + offsetDays)
}

func (s *BookingSuite) checkout(body request.CheckoutRequest) *nethttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, body, "")
}

func (s *BookingSuite) deliver(ev helper.CheckoutSessionEvent) *nethttptest.ResponseRecorder {
	t := s.T()
	payload := ev.Payload()
	return httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, map[string]string{
		api.StripeSignatureHeader: helper.SignStripePayload(t, payload, e2e.WebhookSecret),
	})
}

func (s *BookingSuite) admin() string {
	return s.Config.Admin.Token
}

// =============================================================================
// Checkout through confirmation
// =============================================================================

func (s *BookingSuite) TestCheckoutLifecycle() {
	s.Run("Normal case: checkout, paid webhook, then the date is booked", func() {
		t := s.T()
		date := eventDate(0)
		body := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventDate = date }).BuildCheckoutRequestDTO()

		w := s.checkout(body)
		var created response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		expected := response.PricingResponse{
			RentalType:   "daily",
			DeliveryZone: "local",
			BasePrice:    150,
			DeliveryFee:  20,
			AddOns: []response.LineItemResponse{
				{AddOnID: dbtest.GeneratorAddOnID, Name: "Generator", Quantity: 1, UnitPrice: 15, Subtotal: 15},
			},
			AddOnsTotal:   15,
			Subtotal:      185,
			TotalAmount:   185,
			DepositAmount: 92.5,
			BalanceDue:    92.5,
		}
		if diff := cmp.Diff(expected, created.Pricing); diff != "" {
			t.Errorf("pricing mismatch (-want +got):\n%s", diff)
		}
		require.NotEmpty(t, created.SessionID)

		status, payment := dbtest.BookingStatus(t, s.DB, created.BookingID)
		assert.Equal(t, "pending", status)
		assert.Equal(t, "pending", payment)

		// The fresh pending booking already holds the date.
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dateURL, date), nil, "")
		var day response.DateAvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &day)
		assert.False(t, day.Available)
		assert.Equal(t, "booked", day.Status)

		ev := helper.CheckoutSessionEvent{
			EventID:       "evt_" + uuid.NewString(),
			Type:          "checkout.session.completed",
			SessionID:     created.SessionID,
			PaymentStatus: "paid",
			AmountTotal:   9250,
			BookingID:     created.BookingID,
		}
		w = s.deliver(ev)
		var hook response.WebhookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &hook)
		assert.Equal(t, "confirmed", hook.Outcome)

		// Redelivery of the same event is acknowledged without reprocessing.
		w = s.deliver(ev)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &hook)
		assert.Equal(t, "duplicate", hook.Outcome)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(summaryURL, created.BookingID), nil, "")
		var summary response.BookingSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		want := response.BookingSummaryResponse{
			ID:            created.BookingID,
			Status:        "confirmed",
			PaymentStatus: "deposit_paid",
			EventDate:     date.String(),
			RentalType:    "daily",
			TotalAmount:   185,
			DepositAmount: 92.5,
			BalanceDue:    92.5,
		}
		if diff := cmp.Diff(want, summary); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}

		// A second customer is turned away.
		w = s.checkout(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.EventDate = date
			b.CustomerEmail = "sam@example.com"
		}).BuildCheckoutRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "This date is already booked")
		assert.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("Normal case: expired session releases the date", func() {
		t := s.T()
		date := eventDate(1)

		w := s.checkout(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventDate = date }).BuildCheckoutRequestDTO())
		var created response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		w = s.deliver(helper.CheckoutSessionEvent{
			EventID:   "evt_" + uuid.NewString(),
			Type:      "checkout.session.expired",
			SessionID: created.SessionID,
			BookingID: created.BookingID,
		})
		var hook response.WebhookResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &hook)
		assert.Equal(t, "cancelled", hook.Outcome)

		status, _ := dbtest.BookingStatus(t, s.DB, created.BookingID)
		assert.Equal(t, "cancelled", status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(dateURL, date), nil, "")
		var day response.DateAvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &day)
		assert.True(t, day.Available)
	})

	s.Run("Error case: tampered webhook is rejected", func() {
		t := s.T()
		payload := helper.CheckoutSessionEvent{Type: "checkout.session.completed", BookingID: uuid.New()}.Payload()
		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload, map[string]string{
			api.StripeSignatureHeader: helper.SignStripePayload(t, payload, "whsec_someone_else"),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, dbtest.CountRows(t, s.DB, "webhook_events"))
	})
}

// =============================================================================
// Promo codes
// =============================================================================

func (s *BookingSuite) TestPromoCodes() {
	s.Run("Normal case: validate and apply a percentage code", func() {
		t := s.T()
		dbtest.InsertPercentPromo(t, s.DB, "WELCOME10", 10, nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoURL, request.ValidatePromoRequest{Code: "welcome10", OrderAmount: 185}, "")
		var validation response.PromoValidationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &validation)
		require.True(t, validation.Valid)
		require.NotNil(t, validation.DiscountAmount)
		assert.InDelta(t, 18.5, *validation.DiscountAmount, 0.001)

		code := "WELCOME10"
		w = s.checkout(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.EventDate = eventDate(2)
			b.PromoCode = &code
		}).BuildCheckoutRequestDTO())
		var created response.CheckoutResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		assert.True(t, created.PromoApplied)
		assert.InDelta(t, 18.5, created.Pricing.DiscountAmount, 0.001)
		assert.InDelta(t, 166.5, created.Pricing.TotalAmount, 0.001)
		assert.InDelta(t, 83.25, created.Pricing.DepositAmount, 0.001)
		assert.Equal(t, 1, dbtest.PromoUsesCount(t, s.DB, "WELCOME10"))
	})

	s.Run("Edge case: single use code is redeemed once under concurrency", func() {
		t := s.T()
		one := 1
		dbtest.InsertPercentPromo(t, s.DB, "ONCE", 10, &one)

		const n = 5
		recorders := make([]*nethttptest.ResponseRecorder, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				code := "ONCE"
				body := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
					b.EventDate = eventDate(10 + i)
					b.CustomerEmail = fmt.Sprintf("guest%d@example.com", i)
					b.PromoCode = &code
				}).BuildCheckoutRequestDTO()
				recorders[i] = s.checkout(body)
			}()
		}
		wg.Wait()

		applied := 0
		for _, w := range recorders {
			var created response.CheckoutResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
			if created.PromoApplied {
				applied++
			}
		}
		assert.Equal(t, 1, applied)
		assert.Equal(t, 1, dbtest.PromoUsesCount(t, s.DB, "ONCE"))
	})
}

// =============================================================================
// Admin
// =============================================================================

func (s *BookingSuite) TestAdmin() {
	s.Run("Error case: admin routes require the token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, adminBookingsURL, nil, "wrong")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: blocked date closes the calendar and can be removed", func() {
		t := s.T()
		date := eventDate(20)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminBlockedURL,
			request.CreateBlockedDateRequest{Date: date.String(), Reason: "Maintenance"}, s.admin())
		var blocked response.BlockedDateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &blocked)
		assert.Equal(t, adminBlockedURL+"/"+blocked.ID.String(), w.Header().Get("Location"))

		w = s.checkout(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventDate = date }).BuildCheckoutRequestDTO())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Maintenance")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminBlockedURL+"/"+blocked.ID.String(), nil, s.admin())
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = s.checkout(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.EventDate = date }).BuildCheckoutRequestDTO())
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	s.Run("Normal case: list, complete and cancel bookings", func() {
		t := s.T()

		var ids []uuid.UUID
		for i := range 3 {
			w := s.checkout(builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.EventDate = eventDate(30 + i)
			}).BuildCheckoutRequestDTO())
			var created response.CheckoutResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
			ids = append(ids, created.BookingID)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL+"?limit=2", nil, s.admin())
		var page response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Bookings, 2)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL+"?limit=2&after="+page.NextCursor, nil, s.admin())
		var rest response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &rest)
		require.Len(t, rest.Bookings, 1)
		assert.Empty(t, rest.NextCursor)

		seen := []uuid.UUID{page.Bookings[0].ID, page.Bookings[1].ID, rest.Bookings[0].ID}
		if diff := cmp.Diff(ids, seen, cmpopts.SortSlices(func(a, b uuid.UUID) bool { return a.String() < b.String() })); diff != "" {
			t.Errorf("listed bookings mismatch (-want +got):\n%s", diff)
		}

		// A pending booking cannot be completed.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminBookingsURL+"/"+ids[0].String()+"/complete", nil, s.admin())
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Status transition not allowed")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminBookingsURL+"/"+ids[0].String()+"/cancel", nil, s.admin())
		var transition response.TransitionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &transition)
		assert.Equal(t, "cancelled", transition.Status)
		assert.True(t, transition.Changed)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL+"?status=cancelled", nil, s.admin())
		var cancelled response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Len(t, cancelled.Bookings, 1)
		assert.Equal(t, ids[0], cancelled.Bookings[0].ID)
	})
}
