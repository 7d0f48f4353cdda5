package booking

import (
	"regexp"
	"strings"

	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/civil"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return st, true
	default:
		return st, false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentPaid        PaymentStatus = "paid"
	PaymentRefunded    PaymentStatus = "refunded"
)

type Customer struct {
	Name  string
	Email string
	Phone string
}

var startTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func ValidStartTime(s string) bool {
	return startTimeRegex.MatchString(s)
}

type Event struct {
	Date            civil.Date
	StartTime       *string
	Address         string
	PostalCode      string
	GuestsCount     *int
	SpecialRequests *string
}

// Pricing is the price snapshot taken at checkout; it never changes afterwards.
type Pricing struct {
	RentalType     pricing.RentalType
	DeliveryZone   pricing.DeliveryZone
	BasePrice      money.Cents
	DeliveryFee    money.Cents
	AddOns         []pricing.LineItem
	AddOnsTotal    money.Cents
	DiscountAmount money.Cents
	PromoCode      *string
	TotalAmount    money.Cents
	DepositAmount  money.Cents
}

func PricingFrom(q pricing.Quote, t pricing.Totals, promoCode *string) Pricing {
	return Pricing{
		RentalType:     q.RentalType,
		DeliveryZone:   q.DeliveryZone,
		BasePrice:      q.BasePrice,
		DeliveryFee:    q.DeliveryFee,
		AddOns:         q.AddOns,
		AddOnsTotal:    q.AddOnsTotal,
		DiscountAmount: t.DiscountAmount,
		PromoCode:      promoCode,
		TotalAmount:    t.TotalAmount,
		DepositAmount:  t.DepositAmount,
	}
}

func (p Pricing) Subtotal() money.Cents {
	return p.BasePrice + p.DeliveryFee + p.AddOnsTotal
}

func (p Pricing) BalanceDue() money.Cents {
	return p.TotalAmount - p.DepositAmount
}

func (p Pricing) consistent() bool {
	if p.DiscountAmount < 0 || p.DepositAmount < 0 || p.DepositAmount > p.TotalAmount {
		return false
	}
	var lines money.Cents
	for _, li := range p.AddOns {
		lines += li.Subtotal
	}
	return lines == p.AddOnsTotal && p.TotalAmount == p.Subtotal()-p.DiscountAmount
}
