package promo

import (
	"errors"
	"fmt"
	"time"

	"bounce-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("promo code not found")
	ErrInactive           = errors.New("promo code is inactive")
	ErrNotYetActive       = errors.New("promo code is not yet active")
	ErrExpired            = errors.New("promo code has expired")
	ErrUsageLimitReached  = errors.New("promo code has reached its usage limit")
	ErrMinimumOrderNotMet = errors.New("order is below the promo minimum")
	ErrInvalidWindow      = errors.New("valid from must not be after valid until")
	ErrInvalidMaxUses     = errors.New("max uses must be at least 1")
)

// MinimumOrderError carries the threshold so the caller can tell the customer.
type MinimumOrderError struct {
	Minimum money.Cents
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("minimum order of %s required", e.Minimum)
}

func (e *MinimumOrderError) Unwrap() error {
	return ErrMinimumOrderNotMet
}

type PromoCode struct {
	id             uuid.UUID
	code           Code
	discount       Discount
	description    *string
	minOrderAmount money.Cents
	maxUses        *int
	usesCount      int
	validFrom      *time.Time
	validUntil     *time.Time
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPromoCode(
	id uuid.UUID,
	code string,
	discount Discount,
	description *string,
	minOrderAmount money.Cents,
	maxUses *int,
	validFrom, validUntil *time.Time,
) (*PromoCode, error) {
	c, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if validFrom != nil && validUntil != nil && validFrom.After(*validUntil) {
		return nil, ErrInvalidWindow
	}
	if maxUses != nil && *maxUses < 1 {
		return nil, ErrInvalidMaxUses
	}
	if minOrderAmount < 0 {
		minOrderAmount = 0
	}
	return &PromoCode{
		id:             id,
		code:           c,
		discount:       discount,
		description:    description,
		minOrderAmount: minOrderAmount,
		maxUses:        maxUses,
		validFrom:      validFrom,
		validUntil:     validUntil,
		isActive:       true,
	}, nil
}

func ReconstructPromoCode(
	id uuid.UUID,
	code Code,
	discount Discount,
	description *string,
	minOrderAmount money.Cents,
	maxUses *int,
	usesCount int,
	validFrom, validUntil *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *PromoCode {
	return &PromoCode{
		id:             id,
		code:           code,
		discount:       discount,
		description:    description,
		minOrderAmount: minOrderAmount,
		maxUses:        maxUses,
		usesCount:      usesCount,
		validFrom:      validFrom,
		validUntil:     validUntil,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Validate checks, in order: active, date window, usage cap, minimum order.
// The first failing rule is returned.
func (p *PromoCode) Validate(now time.Time, orderAmount money.Cents) error {
	if !p.isActive {
		return ErrInactive
	}
	if p.validFrom != nil && now.Before(*p.validFrom) {
		return ErrNotYetActive
	}
	if p.validUntil != nil && now.After(*p.validUntil) {
		return ErrExpired
	}
	if p.IsExhausted() {
		return ErrUsageLimitReached
	}
	if orderAmount < p.minOrderAmount {
		return &MinimumOrderError{Minimum: p.minOrderAmount}
	}
	return nil
}

func (p *PromoCode) IsExhausted() bool {
	return p.maxUses != nil && p.usesCount >= *p.maxUses
}

func (p *PromoCode) DiscountFor(orderAmount money.Cents) money.Cents {
	return p.discount.AmountFor(orderAmount)
}

func (p *PromoCode) ID() uuid.UUID               { return p.id }
func (p *PromoCode) Code() Code                  { return p.code }
func (p *PromoCode) Discount() Discount          { return p.discount }
func (p *PromoCode) Description() *string        { return p.description }
func (p *PromoCode) MinOrderAmount() money.Cents { return p.minOrderAmount }
func (p *PromoCode) MaxUses() *int               { return p.maxUses }
func (p *PromoCode) UsesCount() int              { return p.usesCount }
func (p *PromoCode) ValidFrom() *time.Time       { return p.validFrom }
func (p *PromoCode) ValidUntil() *time.Time      { return p.validUntil }
func (p *PromoCode) IsActive() bool              { return p.isActive }
func (p *PromoCode) CreatedAt() time.Time        { return p.createdAt }
func (p *PromoCode) UpdatedAt() time.Time        { return p.updatedAt }

// Message maps a validation failure to the text shown to customers.
func Message(err error) string {
	var minErr *MinimumOrderError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &minErr):
		return fmt.Sprintf("Minimum order of %s required", minErr.Minimum)
	case errors.Is(err, ErrNotYetActive):
		return "This promo code is not yet active"
	case errors.Is(err, ErrExpired):
		return "This promo code has expired"
	case errors.Is(err, ErrUsageLimitReached):
		return "This promo code has reached its usage limit"
	default:
		return "Invalid promo code"
	}
}
