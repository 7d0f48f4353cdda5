package queries

import (
	"time"

	"bounce-booking/internal/domain/availability"
	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/pkg/civil"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID               uuid.UUID
	AssetID          string
	Status           booking.Status
	PaymentStatus    booking.PaymentStatus
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	EventDate        civil.Date
	EventStartTime   *string
	EventAddress     string
	EventPostalCode  string
	GuestsCount      *int
	SpecialRequests  *string
	RentalType       pricing.RentalType
	DeliveryZone     pricing.DeliveryZone
	BasePrice        money.Cents
	DeliveryFee      money.Cents
	AddOns           []pricing.LineItem
	AddOnsTotal      money.Cents
	DiscountAmount   money.Cents
	PromoCode        *string
	TotalAmount      money.Cents
	DepositAmount    money.Cents
	PaymentSessionID *string
	PaymentIntentID  *string
	DepositPaidAt    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (v *BookingView) BalanceDue() money.Cents {
	return v.TotalAmount - v.DepositAmount
}

type BookingListItem struct {
	ID            uuid.UUID
	AssetID       string
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	CustomerName  string
	CustomerEmail string
	EventDate     civil.Date
	RentalType    pricing.RentalType
	TotalAmount   money.Cents
	DepositAmount money.Cents
	CreatedAt     time.Time
}

type BookingFilter struct {
	Status  *booking.Status
	AssetID *string
	From    *civil.Date
	To      *civil.Date
}

type BlockedDateView struct {
	ID        uuid.UUID
	Date      civil.Date
	AssetID   *string
	Reason    string
	CreatedAt time.Time
}

type DateAvailability struct {
	AssetID  string
	Day      availability.Day
	Degraded bool
}

type MonthAvailability struct {
	AssetID  string
	Year     int
	Month    time.Month
	Degraded bool
	Days     []availability.Day
}

type PromoValidation struct {
	Valid          bool
	Code           string
	DiscountType   promo.DiscountType
	DiscountValue  float64
	DiscountAmount money.Cents
	Description    *string
	Error          string
}
