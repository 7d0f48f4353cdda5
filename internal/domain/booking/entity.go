package booking

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAssetRequired         = errors.New("asset is required")
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerEmailInvalid  = errors.New("customer email is invalid")
	ErrEventDateRequired     = errors.New("event date is required")
	ErrEventAddressRequired  = errors.New("event address is required")
	ErrInvalidStartTime      = errors.New("event time must be formatted as HH:MM")
	ErrNegativeGuests        = errors.New("guest count cannot be negative")
	ErrPricingInconsistent   = errors.New("pricing snapshot is inconsistent")
	ErrInvalidTransition     = errors.New("booking status transition not allowed")
	ErrSessionRequired       = errors.New("payment session reference is required")
	ErrSessionAlreadyPresent = errors.New("booking already has a different payment session")
)

type Booking struct {
	id               uuid.UUID
	assetID          string
	customer         Customer
	event            Event
	pricing          Pricing
	status           Status
	paymentStatus    PaymentStatus
	paymentSessionID *string
	paymentIntentID  *string
	createdAt        time.Time
	depositPaidAt    *time.Time
	updatedAt        time.Time
}

// NewBooking creates a pending booking. The caller supplies the id so it can
// be used as a lock owner before the row exists.
func NewBooking(id uuid.UUID, assetID string, customer Customer, event Event, p Pricing, now time.Time) (*Booking, error) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return nil, ErrAssetRequired
	}

	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Name == "" {
		return nil, ErrCustomerNameRequired
	}
	if _, err := mail.ParseAddress(customer.Email); err != nil {
		return nil, ErrCustomerEmailInvalid
	}

	event.Address = strings.TrimSpace(event.Address)
	if event.Date.IsZero() {
		return nil, ErrEventDateRequired
	}
	if event.Address == "" {
		return nil, ErrEventAddressRequired
	}
	if event.StartTime != nil && !ValidStartTime(*event.StartTime) {
		return nil, ErrInvalidStartTime
	}
	if event.GuestsCount != nil && *event.GuestsCount < 0 {
		return nil, ErrNegativeGuests
	}

	if !p.consistent() {
		return nil, ErrPricingInconsistent
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Booking{
		id:            id,
		assetID:       assetID,
		customer:      customer,
		event:         event,
		pricing:       p,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	assetID string,
	customer Customer,
	event Event,
	p Pricing,
	status Status,
	paymentStatus PaymentStatus,
	paymentSessionID, paymentIntentID *string,
	createdAt time.Time,
	depositPaidAt *time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		assetID:          assetID,
		customer:         customer,
		event:            event,
		pricing:          p,
		status:           status,
		paymentStatus:    paymentStatus,
		paymentSessionID: paymentSessionID,
		paymentIntentID:  paymentIntentID,
		createdAt:        createdAt,
		depositPaidAt:    depositPaidAt,
		updatedAt:        updatedAt,
	}
}

// AttachSession records the payment session created for this booking.
func (b *Booking) AttachSession(sessionID string, now time.Time) (bool, error) {
	if sessionID == "" {
		return false, ErrSessionRequired
	}
	if b.status != StatusPending {
		return false, ErrInvalidTransition
	}
	if b.paymentSessionID != nil {
		if *b.paymentSessionID == sessionID {
			return false, nil
		}
		return false, ErrSessionAlreadyPresent
	}
	b.paymentSessionID = &sessionID
	b.updatedAt = now
	return true, nil
}

// Confirm moves pending/pending to confirmed/deposit_paid. A repeated
// confirmation is a no-op; confirming a terminal booking is rejected.
func (b *Booking) Confirm(paymentRef string, now time.Time) (bool, error) {
	switch b.status {
	case StatusConfirmed:
		return false, nil
	case StatusPending:
	default:
		return false, ErrInvalidTransition
	}
	b.status = StatusConfirmed
	b.paymentStatus = PaymentDepositPaid
	if paymentRef != "" {
		b.paymentIntentID = &paymentRef
	}
	paidAt := now
	b.depositPaidAt = &paidAt
	b.updatedAt = now
	return true, nil
}

// Expire voids a booking whose payment session lapsed. Only pending bookings
// are affected; anything else keeps its state.
func (b *Booking) Expire(now time.Time) bool {
	if b.status != StatusPending {
		return false
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return true
}

func (b *Booking) Complete(now time.Time) (bool, error) {
	switch b.status {
	case StatusCompleted:
		return false, nil
	case StatusConfirmed:
	default:
		return false, ErrInvalidTransition
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return true, nil
}

// Cancel is the administrative void. Payment status is left as is; refunds
// are handled outside this service.
func (b *Booking) Cancel(now time.Time) (bool, error) {
	switch b.status {
	case StatusCancelled:
		return false, nil
	case StatusPending, StatusConfirmed:
	default:
		return false, ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return true, nil
}

// HoldsDate reports whether this booking currently keeps its date off the calendar.
func (b *Booking) HoldsDate(now time.Time, holdWindow time.Duration) bool {
	switch b.status {
	case StatusConfirmed:
		return true
	case StatusPending:
		return now.Sub(b.createdAt) < holdWindow
	default:
		return false
	}
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) AssetID() string              { return b.assetID }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) Event() Event                 { return b.event }
func (b *Booking) Pricing() Pricing             { return b.pricing }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentSessionID() *string    { return b.paymentSessionID }
func (b *Booking) PaymentIntentID() *string     { return b.paymentIntentID }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) DepositPaidAt() *time.Time    { return b.depositPaidAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
