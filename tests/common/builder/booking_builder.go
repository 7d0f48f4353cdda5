//go:build unit || e2e

package builder

import (
	"time"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	reqdto "bounce-booking/internal/handler/dto/request"
	"bounce-booking/internal/infra/repository/converter"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/civil"
	"bounce-booking/internal/pkg/pgconv"
	"bounce-booking/internal/usecase/commands"
	"bounce-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID              uuid.UUID
	AssetID         string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	EventDate       civil.Date
	StartTime       *string
	Address         string
	PostalCode      string
	GuestsCount     *int
	SpecialRequests *string
	RentalType      pricing.RentalType
	DeliveryZone    pricing.DeliveryZone
	BasePrice       money.Cents
	DeliveryFee     money.Cents
	AddOns          []pricing.LineItem
	Discount        money.Cents
	PromoCode       *string
	DepositPercent  int
	Status          booking.Status
	SessionID       *string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := "10:00"
	guests := 12
	return &BookingBuilder{
		ID:            uuid.New(),
		AssetID:       "castle-classic",
		CustomerName:  "Jordan Rivera",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "+15555550100",
		EventDate:     civil.New(2030, time.June, 15),
		StartTime:     &start,
		Address:       "12 Elm St, Springfield",
		PostalCode:    "75001",
		GuestsCount:   &guests,
		RentalType:    pricing.RentalDaily,
		DeliveryZone:  pricing.ZoneLocal,
		BasePrice:     15000,
		DeliveryFee:   2000,
		AddOns: []pricing.LineItem{
			{AddOnID: uuid.MustParse("6f1c0a5e-0000-4000-8000-000000000001"), Name: "Generator", Quantity: 1, UnitPrice: 1500, Subtotal: 1500},
		},
		DepositPercent: 50,
		Status:         booking.StatusPending,
		CreatedAt:      time.Date(2030, time.May, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Pricing() booking.Pricing {
	var addOnsTotal money.Cents
	for _, it := range b.AddOns {
		addOnsTotal += it.Subtotal
	}
	total := b.BasePrice + b.DeliveryFee + addOnsTotal - b.Discount
	return booking.Pricing{
		RentalType:     b.RentalType,
		DeliveryZone:   b.DeliveryZone,
		BasePrice:      b.BasePrice,
		DeliveryFee:    b.DeliveryFee,
		AddOns:         b.AddOns,
		AddOnsTotal:    addOnsTotal,
		DiscountAmount: b.Discount,
		PromoCode:      b.PromoCode,
		TotalAmount:    total,
		DepositAmount:  total.Share(b.DepositPercent),
	}
}

// BuildDomain returns the booking in the builder's status. Confirmed and
// completed bookings carry a paid deposit.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	paymentStatus := booking.PaymentPending
	var paidAt *time.Time
	var intent *string
	if b.Status == booking.StatusConfirmed || b.Status == booking.StatusCompleted {
		paymentStatus = booking.PaymentDepositPaid
		t := b.CreatedAt.Add(5 * time.Minute)
		paidAt = &t
		pi := "pi_test"
		intent = &pi
	}
	return booking.ReconstructBooking(
		b.ID,
		b.AssetID,
		booking.Customer{Name: b.CustomerName, Email: b.CustomerEmail, Phone: b.CustomerPhone},
		b.Event(),
		b.Pricing(),
		b.Status,
		paymentStatus,
		b.SessionID,
		intent,
		b.CreatedAt,
		paidAt,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) Event() booking.Event {
	return booking.Event{
		Date:            b.EventDate,
		StartTime:       b.StartTime,
		Address:         b.Address,
		PostalCode:      b.PostalCode,
		GuestsCount:     b.GuestsCount,
		SpecialRequests: b.SpecialRequests,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	d := b.BuildDomain()
	params, err := converter.BookingToCreateParams(d)
	if err != nil {
		panic(err)
	}
	return sqlc.Bookings{
		ID:               params.ID,
		AssetID:          params.AssetID,
		Status:           params.Status,
		PaymentStatus:    params.PaymentStatus,
		CustomerName:     params.CustomerName,
		CustomerEmail:    params.CustomerEmail,
		CustomerPhone:    params.CustomerPhone,
		EventDate:        params.EventDate,
		EventStartTime:   params.EventStartTime,
		EventAddress:     params.EventAddress,
		EventPostalCode:  params.EventPostalCode,
		GuestsCount:      params.GuestsCount,
		SpecialRequests:  params.SpecialRequests,
		RentalType:       params.RentalType,
		DeliveryZone:     params.DeliveryZone,
		BasePriceCents:   params.BasePriceCents,
		DeliveryFeeCents: params.DeliveryFeeCents,
		AddOns:           params.AddOns,
		AddOnsTotalCents: params.AddOnsTotalCents,
		DiscountCents:    params.DiscountCents,
		PromoCode:        params.PromoCode,
		TotalCents:       params.TotalCents,
		DepositCents:     params.DepositCents,
		PaymentSessionID: pgconv.StringPtrToPgtype(d.PaymentSessionID()),
		PaymentIntentID:  pgconv.StringPtrToPgtype(d.PaymentIntentID()),
		DepositPaidAt:    pgconv.TimePtrToPgtype(d.DepositPaidAt()),
		CreatedAt:        params.CreatedAt,
		UpdatedAt:        params.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	d := b.BuildDomain()
	p := d.Pricing()
	e := d.Event()
	return &queries.BookingView{
		ID:               d.ID(),
		AssetID:          d.AssetID(),
		Status:           d.Status(),
		PaymentStatus:    d.PaymentStatus(),
		CustomerName:     d.Customer().Name,
		CustomerEmail:    d.Customer().Email,
		CustomerPhone:    d.Customer().Phone,
		EventDate:        e.Date,
		EventStartTime:   e.StartTime,
		EventAddress:     e.Address,
		EventPostalCode:  e.PostalCode,
		GuestsCount:      e.GuestsCount,
		SpecialRequests:  e.SpecialRequests,
		RentalType:       p.RentalType,
		DeliveryZone:     p.DeliveryZone,
		BasePrice:        p.BasePrice,
		DeliveryFee:      p.DeliveryFee,
		AddOns:           p.AddOns,
		AddOnsTotal:      p.AddOnsTotal,
		DiscountAmount:   p.DiscountAmount,
		PromoCode:        p.PromoCode,
		TotalAmount:      p.TotalAmount,
		DepositAmount:    p.DepositAmount,
		PaymentSessionID: d.PaymentSessionID(),
		PaymentIntentID:  d.PaymentIntentID(),
		DepositPaidAt:    d.DepositPaidAt(),
		CreatedAt:        d.CreatedAt(),
		UpdatedAt:        d.UpdatedAt(),
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	d := b.BuildDomain()
	p := d.Pricing()
	return &queries.BookingListItem{
		ID:            b.ID,
		AssetID:       b.AssetID,
		Status:        b.Status,
		PaymentStatus: d.PaymentStatus(),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		EventDate:     b.EventDate,
		RentalType:    b.RentalType,
		TotalAmount:   p.TotalAmount,
		DepositAmount: p.DepositAmount,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	addOns := make([]reqdto.AddOnSelection, 0, len(b.AddOns))
	for _, it := range b.AddOns {
		addOns = append(addOns, reqdto.AddOnSelection{ID: it.AddOnID, Quantity: it.Quantity})
	}
	return reqdto.CheckoutRequest{
		AssetID:         b.AssetID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		EventDate:       b.EventDate.String(),
		EventTime:       b.StartTime,
		EventAddress:    b.Address,
		EventZip:        b.PostalCode,
		RentalType:      b.RentalType.String(),
		AddOns:          addOns,
		GuestsCount:     b.GuestsCount,
		SpecialRequests: b.SpecialRequests,
		PromoCode:       b.PromoCode,
	}
}

func (b *BookingBuilder) BuildCheckoutCommand() commands.CheckoutRequest {
	selections := make([]pricing.AddOnSelection, 0, len(b.AddOns))
	for _, it := range b.AddOns {
		selections = append(selections, pricing.AddOnSelection{ID: it.AddOnID, Quantity: it.Quantity})
	}
	return commands.CheckoutRequest{
		AssetID:         b.AssetID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		EventDate:       b.EventDate,
		EventTime:       b.StartTime,
		EventAddress:    b.Address,
		PostalCode:      b.PostalCode,
		RentalType:      b.RentalType,
		AddOns:          selections,
		GuestsCount:     b.GuestsCount,
		SpecialRequests: b.SpecialRequests,
		PromoCode:       b.PromoCode,
	}
}

func (b *BookingBuilder) BuildCheckoutResult() *commands.CheckoutResult {
	return &commands.CheckoutResult{
		CheckoutURL:  "https://checkout.stripe.com/c/pay/cs_test_builder",
		SessionID:    "cs_test_builder",
		BookingID:    b.ID,
		Pricing:      b.Pricing(),
		PromoApplied: b.PromoCode != nil && b.Discount > 0,
	}
}
