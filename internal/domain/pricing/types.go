package pricing

import (
	"strings"
	"unicode"

	"bounce-booking/internal/domain/money"

	"github.com/google/uuid"
)

type RentalType string

const (
	RentalDaily   RentalType = "daily"
	RentalWeekend RentalType = "weekend"
	RentalWeekly  RentalType = "weekly"
)

// rentalTypeOrder breaks ties when picking the cheapest tier.
var rentalTypeOrder = []RentalType{RentalDaily, RentalWeekend, RentalWeekly}

func ParseRentalType(s string) (RentalType, bool) {
	rt := RentalType(strings.ToLower(strings.TrimSpace(s)))
	switch rt {
	case RentalDaily, RentalWeekend, RentalWeekly:
		return rt, true
	default:
		return rt, false
	}
}

func (r RentalType) String() string {
	return string(r)
}

func (r RentalType) Label() string {
	switch r {
	case RentalWeekend:
		return "Weekend"
	case RentalWeekly:
		return "Weekly"
	default:
		return "Daily"
	}
}

type DeliveryZone string

const (
	ZoneLocal   DeliveryZone = "local"
	ZoneOutside DeliveryZone = "outside"
)

func (z DeliveryZone) String() string {
	return string(z)
}

// NormalizePostalCode keeps the first five digits, so "75001-1234" and " 75001 " both become "75001".
func NormalizePostalCode(code string) string {
	var b strings.Builder
	for _, r := range code {
		if b.Len() == 5 {
			break
		}
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type AddOnSelection struct {
	ID       uuid.UUID
	Quantity int
}

type LineItem struct {
	AddOnID   uuid.UUID
	Name      string
	Quantity  int
	UnitPrice money.Cents
	Subtotal  money.Cents
}

type Quote struct {
	RentalType   RentalType
	BasePrice    money.Cents
	DeliveryZone DeliveryZone
	DeliveryFee  money.Cents
	AddOns       []LineItem
	AddOnsTotal  money.Cents
	Subtotal     money.Cents
}

type Totals struct {
	DiscountAmount money.Cents
	TotalAmount    money.Cents
	DepositAmount  money.Cents
	BalanceDue     money.Cents
}
