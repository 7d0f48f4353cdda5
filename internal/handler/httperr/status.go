package httperr

import (
	"errors"
	"net/http"

	"bounce-booking/internal/pkg/errs"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AbortWithUseCaseError maps command and query failures onto the HTTP
// taxonomy. Unknown errors become a bare 500 so internal details stay private.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (int, string, any) {
	var (
		verr     *commands.ValidationError
		unavErr  *commands.UnavailableError
		promoErr *commands.PromoError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, "Validation failed", verr.Fields
	case errs.Is(err, commands.ErrValidation):
		return http.StatusUnprocessableEntity, "Validation failed", nil
	case errors.As(err, &unavErr):
		return http.StatusConflict, unavErr.Reason, nil
	case errs.Is(err, commands.ErrUnavailable):
		return http.StatusConflict, "Date unavailable", nil
	case errors.As(err, &promoErr):
		return http.StatusUnprocessableEntity, promoErr.Message, nil
	case errs.Is(err, commands.ErrPromoInvalid):
		return http.StatusUnprocessableEntity, "Invalid promo code", nil
	case errs.Is(err, commands.ErrWebhookSignature):
		return http.StatusBadRequest, "Invalid webhook signature", nil
	case errs.Is(err, commands.ErrConfiguration):
		return http.StatusServiceUnavailable, "Payments are not configured", nil
	case errs.Is(err, commands.ErrPaymentGateway):
		return http.StatusBadGateway, "Payment provider error", nil
	case errs.Is(err, commands.ErrBookingNotFound), errs.Is(err, queries.ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found", nil
	case errs.Is(err, commands.ErrBlockedDateNotFound):
		return http.StatusNotFound, "Blocked date not found", nil
	case errs.Is(err, commands.ErrInvalidTransition):
		return http.StatusConflict, "Status transition not allowed", nil
	case errs.Is(err, queries.ErrInvalidCursor):
		return http.StatusBadRequest, "Invalid cursor", nil
	case errs.Is(err, queries.ErrInvalidRange),
		errs.Is(err, queries.ErrInvalidMonth),
		errs.Is(err, queries.ErrInvalidYear):
		return http.StatusBadRequest, err.Error(), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
