package promo

import (
	"errors"
	"regexp"
	"strings"

	"bounce-booking/internal/domain/money"
)

var (
	ErrInvalidCodeFormat      = errors.New("invalid promo code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrAmbiguousDiscount      = errors.New("discount can only be either fixed amount or percentage, not both")
	ErrMissingDiscount        = errors.New("discount must have either fixed amount or percentage")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

// NormalizeCode upper-cases and trims without validating, for lookups.
func NormalizeCode(code string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(code)))
}

func NewCode(code string) (Code, error) {
	c := NormalizeCode(code)
	if !codeRegex.MatchString(string(c)) {
		return Code(""), ErrInvalidCodeFormat
	}
	return c, nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	amountOff  *money.Cents
	percentOff *float64
}

func NewFixedDiscount(amountOff money.Cents) (Discount, error) {
	if amountOff < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOff: &amountOff}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func NewDiscount(amountOffCents *int64, percentOff *float64) (Discount, error) {
	if amountOffCents != nil && percentOff != nil {
		return Discount{}, ErrAmbiguousDiscount
	}
	if amountOffCents == nil && percentOff == nil {
		return Discount{}, ErrMissingDiscount
	}
	if amountOffCents != nil {
		return NewFixedDiscount(money.Cents(*amountOffCents))
	}
	return NewPercentageDiscount(*percentOff)
}

func (d Discount) Type() DiscountType {
	if d.percentOff != nil {
		return DiscountPercentage
	}
	return DiscountFixed
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) AmountOff() money.Cents {
	if d.amountOff != nil {
		return *d.amountOff
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

// Value is the percent for percentage discounts and dollars for fixed ones.
func (d Discount) Value() float64 {
	if d.IsPercentage() {
		return d.PercentOff()
	}
	return d.AmountOff().Dollars()
}

// AmountFor never exceeds orderAmount, so a discount cannot make an order negative.
func (d Discount) AmountFor(orderAmount money.Cents) money.Cents {
	if orderAmount <= 0 {
		return 0
	}
	var amount money.Cents
	if d.IsPercentage() {
		amount = orderAmount.PercentOf(d.PercentOff())
	} else {
		amount = d.AmountOff()
	}
	return amount.Clamp(0, orderAmount)
}
