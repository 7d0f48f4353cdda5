package request

import (
	"strings"

	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddOnSelection struct {
	ID       uuid.UUID `json:"id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	AssetID         string           `json:"assetId,omitempty" binding:"omitempty,max=64"`
	CustomerName    string           `json:"customerName" binding:"required,max=200"`
	CustomerEmail   string           `json:"customerEmail" binding:"required,email,max=254"`
	CustomerPhone   string           `json:"customerPhone,omitempty" binding:"omitempty,max=32"`
	EventDate       string           `json:"eventDate" binding:"required,isodate"`
	EventTime       *string          `json:"eventTime,omitempty" binding:"omitempty,hhmm"`
	EventAddress    string           `json:"eventAddress" binding:"required,max=500"`
	EventZip        string           `json:"eventZip" binding:"required,max=10"`
	RentalType      string           `json:"rentalType" binding:"required,oneof=daily weekend weekly"`
	AddOns          []AddOnSelection `json:"addOns,omitempty" binding:"omitempty,max=50,dive"`
	GuestsCount     *int             `json:"guestsCount,omitempty" binding:"omitempty,min=0"`
	SpecialRequests *string          `json:"specialRequests,omitempty" binding:"omitempty,max=2000"`
	PromoCode       *string          `json:"promoCode,omitempty" binding:"omitempty,max=64"`
	RequirePromo    bool             `json:"requirePromo,omitempty"`
}

func (r CheckoutRequest) GetPromoCode() *string {
	return trimmedPtr(r.PromoCode)
}

// ToCommand assumes binding already validated the date and rental type.
func (r CheckoutRequest) ToCommand() (commands.CheckoutRequest, error) {
	date, err := civil.Parse(r.EventDate)
	if err != nil {
		return commands.CheckoutRequest{}, err
	}
	rt, _ := pricing.ParseRentalType(r.RentalType)

	selections := make([]pricing.AddOnSelection, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		selections = append(selections, pricing.AddOnSelection{ID: a.ID, Quantity: a.Quantity})
	}

	return commands.CheckoutRequest{
		AssetID:         strings.TrimSpace(r.AssetID),
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		EventDate:       date,
		EventTime:       trimmedPtr(r.EventTime),
		EventAddress:    r.EventAddress,
		PostalCode:      r.EventZip,
		RentalType:      rt,
		AddOns:          selections,
		GuestsCount:     r.GuestsCount,
		SpecialRequests: trimmedPtr(r.SpecialRequests),
		PromoCode:       r.GetPromoCode(),
		RequirePromo:    r.RequirePromo,
	}, nil
}

type ValidatePromoRequest struct {
	Code        string  `json:"code" binding:"required,max=64"`
	OrderAmount float64 `json:"orderAmount" binding:"min=0"`
}

type CreateBlockedDateRequest struct {
	Date    string  `json:"date" binding:"required,isodate"`
	AssetID *string `json:"assetId,omitempty" binding:"omitempty,max=64"`
	Reason  string  `json:"reason" binding:"max=200"`
}

func (r CreateBlockedDateRequest) ToCommand() (commands.CreateBlockedDateRequest, error) {
	date, err := civil.Parse(r.Date)
	if err != nil {
		return commands.CreateBlockedDateRequest{}, err
	}
	return commands.CreateBlockedDateRequest{
		Date:    date,
		AssetID: trimmedPtr(r.AssetID),
		Reason:  strings.TrimSpace(r.Reason),
	}, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
