//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"bounce-booking/internal/handler/httperr"
	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error keeps field detail",
			err:        errs.Wrap(commands.NewValidationError("eventZip", "is not served"), "checkout"),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Validation failed",
		},
		{
			name:       "unavailable reports reason",
			err:        &commands.UnavailableError{Reason: "Date is already booked"},
			wantStatus: http.StatusConflict,
			wantMsg:    "Date is already booked",
		},
		{
			name:       "promo rejection reports message",
			err:        errs.Wrap(&commands.PromoError{Message: "Promo code has expired"}, "apply promo"),
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Promo code has expired",
		},
		{
			name:       "marked webhook signature",
			err:        errs.Mark(errors.New("no signatures found"), commands.ErrWebhookSignature),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid webhook signature",
		},
		{
			name:       "gateway not configured",
			err:        errs.Wrap(commands.ErrConfiguration, "create session"),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "Payments are not configured",
		},
		{
			name:       "gateway failure",
			err:        errs.Mark(errors.New("stripe: 500"), commands.ErrPaymentGateway),
			wantStatus: http.StatusBadGateway,
			wantMsg:    "Payment provider error",
		},
		{
			name:       "booking not found from queries",
			err:        queries.ErrBookingNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Booking not found",
		},
		{
			name:       "transition not allowed",
			err:        errs.Wrap(commands.ErrInvalidTransition, "complete"),
			wantStatus: http.StatusConflict,
			wantMsg:    "Status transition not allowed",
		},
		{
			name:       "invalid cursor",
			err:        queries.ErrInvalidCursor,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Invalid cursor",
		},
		{
			name:       "unknown error is opaque",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := httperr.Classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestClassifyValidationDetail(t *testing.T) {
	_, _, detail := httperr.Classify(commands.NewValidationError("eventDate", "must be in the future"))

	assert.Equal(t, map[string]string{"eventDate": "must be in the future"}, detail)
}
