package response

import (
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/pricing"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Amounts are dollars.
type LineItemResponse struct {
	AddOnID   uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	Subtotal  float64   `json:"subtotal"`
}

type PricingResponse struct {
	RentalType     string             `json:"rentalType"`
	DeliveryZone   string             `json:"deliveryZone"`
	BasePrice      float64            `json:"basePrice"`
	DeliveryFee    float64            `json:"deliveryFee"`
	AddOns         []LineItemResponse `json:"addOns"`
	AddOnsTotal    float64            `json:"addOnsTotal"`
	Subtotal       float64            `json:"subtotal"`
	DiscountAmount float64            `json:"discountAmount"`
	PromoCode      *string            `json:"promoCode,omitempty"`
	TotalAmount    float64            `json:"totalAmount"`
	DepositAmount  float64            `json:"depositAmount"`
	BalanceDue     float64            `json:"balanceDue"`
}

type CheckoutResponse struct {
	CheckoutURL  string          `json:"checkoutUrl"`
	SessionID    string          `json:"sessionId"`
	BookingID    uuid.UUID       `json:"bookingId"`
	Pricing      PricingResponse `json:"pricing"`
	PromoApplied bool            `json:"promoApplied"`
	PromoMessage string          `json:"promoMessage,omitempty"`
}

// BookingSummaryResponse is the public view; it carries no contact details.
type BookingSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	EventDate     string    `json:"eventDate"`
	RentalType    string    `json:"rentalType"`
	TotalAmount   float64   `json:"totalAmount"`
	DepositAmount float64   `json:"depositAmount"`
	BalanceDue    float64   `json:"balanceDue"`
}

type BookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	AssetID          string          `json:"assetId"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	CustomerPhone    string          `json:"customerPhone,omitempty"`
	EventDate        string          `json:"eventDate"`
	EventTime        *string         `json:"eventTime,omitempty"`
	EventAddress     string          `json:"eventAddress"`
	PostalCode       string          `json:"eventZip"`
	GuestsCount      *int            `json:"guestsCount,omitempty"`
	SpecialRequests  *string         `json:"specialRequests,omitempty"`
	Pricing          PricingResponse `json:"pricing"`
	PaymentSessionID *string         `json:"paymentSessionId,omitempty"`
	PaymentIntentID  *string         `json:"paymentIntentId,omitempty"`
	DepositPaidAt    *time.Time      `json:"depositPaidAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type BookingListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	AssetID       string    `json:"assetId"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	EventDate     string    `json:"eventDate"`
	RentalType    string    `json:"rentalType"`
	TotalAmount   float64   `json:"totalAmount"`
	DepositAmount float64   `json:"depositAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings   []*BookingListItemResponse `json:"bookings"`
	NextCursor string                     `json:"nextCursor,omitempty"`
}

type TransitionResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
	Changed   bool      `json:"changed"`
}

func FromPricing(p booking.Pricing) PricingResponse {
	items := make([]LineItemResponse, 0, len(p.AddOns))
	for _, it := range p.AddOns {
		items = append(items, fromLineItem(it))
	}
	return PricingResponse{
		RentalType:     p.RentalType.String(),
		DeliveryZone:   p.DeliveryZone.String(),
		BasePrice:      p.BasePrice.Dollars(),
		DeliveryFee:    p.DeliveryFee.Dollars(),
		AddOns:         items,
		AddOnsTotal:    p.AddOnsTotal.Dollars(),
		Subtotal:       p.Subtotal().Dollars(),
		DiscountAmount: p.DiscountAmount.Dollars(),
		PromoCode:      p.PromoCode,
		TotalAmount:    p.TotalAmount.Dollars(),
		DepositAmount:  p.DepositAmount.Dollars(),
		BalanceDue:     p.BalanceDue().Dollars(),
	}
}

func fromLineItem(it pricing.LineItem) LineItemResponse {
	return LineItemResponse{
		AddOnID:   it.AddOnID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice.Dollars(),
		Subtotal:  it.Subtotal.Dollars(),
	}
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		CheckoutURL:  r.CheckoutURL,
		SessionID:    r.SessionID,
		BookingID:    r.BookingID,
		Pricing:      FromPricing(r.Pricing),
		PromoApplied: r.PromoApplied,
		PromoMessage: r.PromoMessage,
	}
}

func viewPricing(v *queries.BookingView) booking.Pricing {
	return booking.Pricing{
		RentalType:     v.RentalType,
		DeliveryZone:   v.DeliveryZone,
		BasePrice:      v.BasePrice,
		DeliveryFee:    v.DeliveryFee,
		AddOns:         v.AddOns,
		AddOnsTotal:    v.AddOnsTotal,
		DiscountAmount: v.DiscountAmount,
		PromoCode:      v.PromoCode,
		TotalAmount:    v.TotalAmount,
		DepositAmount:  v.DepositAmount,
	}
}

func FromBookingSummary(v *queries.BookingView) *BookingSummaryResponse {
	return &BookingSummaryResponse{
		ID:            v.ID,
		Status:        string(v.Status),
		PaymentStatus: string(v.PaymentStatus),
		EventDate:     v.EventDate.String(),
		RentalType:    v.RentalType.String(),
		TotalAmount:   v.TotalAmount.Dollars(),
		DepositAmount: v.DepositAmount.Dollars(),
		BalanceDue:    v.BalanceDue().Dollars(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               v.ID,
		AssetID:          v.AssetID,
		Status:           string(v.Status),
		PaymentStatus:    string(v.PaymentStatus),
		CustomerName:     v.CustomerName,
		CustomerEmail:    v.CustomerEmail,
		CustomerPhone:    v.CustomerPhone,
		EventDate:        v.EventDate.String(),
		EventTime:        v.EventStartTime,
		EventAddress:     v.EventAddress,
		PostalCode:       v.EventPostalCode,
		GuestsCount:      v.GuestsCount,
		SpecialRequests:  v.SpecialRequests,
		Pricing:          FromPricing(viewPricing(v)),
		PaymentSessionID: v.PaymentSessionID,
		PaymentIntentID:  v.PaymentIntentID,
		DepositPaidAt:    v.DepositPaidAt,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromBookingList(items []*queries.BookingListItem, next *queries.Cursor) *BookingListResponse {
	out := make([]*BookingListItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, &BookingListItemResponse{
			ID:            it.ID,
			AssetID:       it.AssetID,
			Status:        string(it.Status),
			PaymentStatus: string(it.PaymentStatus),
			CustomerName:  it.CustomerName,
			CustomerEmail: it.CustomerEmail,
			EventDate:     it.EventDate.String(),
			RentalType:    it.RentalType.String(),
			TotalAmount:   it.TotalAmount.Dollars(),
			DepositAmount: it.DepositAmount.Dollars(),
			CreatedAt:     it.CreatedAt,
		})
	}
	resp := &BookingListResponse{Bookings: out}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp
}

func FromTransition(r *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{BookingID: r.BookingID, Status: string(r.Status), Changed: r.Changed}
}
