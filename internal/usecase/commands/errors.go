package commands

import (
	"errors"
	"sort"
	"strings"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/pkg/errs"
)

var (
	ErrValidation          = errs.New("validation failed")
	ErrUnavailable         = errs.New("date unavailable")
	ErrPromoInvalid        = errs.New("promo code invalid")
	ErrPaymentGateway      = errs.New("payment gateway error")
	ErrConfiguration       = errs.New("payment gateway not configured")
	ErrWebhookSignature    = errs.New("webhook signature verification failed")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrInvalidTransition   = errs.New("booking status transition not allowed")
	ErrBlockedDateNotFound = errs.New("blocked date not found")
)

// ValidationError lists offending fields with a message per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string { return "date unavailable: " + e.Reason }
func (e *UnavailableError) Unwrap() error { return ErrUnavailable }

type PromoError struct {
	Message string
}

func (e *PromoError) Error() string { return "promo code invalid: " + e.Message }
func (e *PromoError) Unwrap() error { return ErrPromoInvalid }

var domainFieldErrors = []struct {
	err   error
	field string
}{
	{booking.ErrAssetRequired, "assetId"},
	{booking.ErrCustomerNameRequired, "customerName"},
	{booking.ErrCustomerEmailInvalid, "customerEmail"},
	{booking.ErrEventDateRequired, "eventDate"},
	{booking.ErrEventAddressRequired, "eventAddress"},
	{booking.ErrInvalidStartTime, "eventTime"},
	{booking.ErrNegativeGuests, "guestsCount"},
	{booking.ErrPricingInconsistent, "pricing"},
	{availability.ErrBlockedDateRequired, "date"},
	{availability.ErrReasonTooLong, "reason"},
}

// asValidationError converts a domain constructor failure into a field error.
// Unknown errors are returned unchanged.
func asValidationError(err error) error {
	for _, fe := range domainFieldErrors {
		if errors.Is(err, fe.err) {
			return NewValidationError(fe.field, fe.err.Error())
		}
	}
	return err
}
