package converter

import (
	"encoding/json"
	"fmt"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"
	sqlc "bounce-booking/internal/infra/sqlc/generated"
	"bounce-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// lineItemRecord is the JSONB shape of one priced add-on.
type lineItemRecord struct {
	AddOnID        uuid.UUID `json:"addOnId"`
	Name           string    `json:"name"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

func EncodeLineItems(items []pricing.LineItem) ([]byte, error) {
	records := make([]lineItemRecord, 0, len(items))
	for _, it := range items {
		records = append(records, lineItemRecord{
			AddOnID:        it.AddOnID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPrice.Int64(),
			SubtotalCents:  it.Subtotal.Int64(),
		})
	}
	return json.Marshal(records)
}

func DecodeLineItems(raw []byte) ([]pricing.LineItem, error) {
	if len(raw) == 0 {
		return []pricing.LineItem{}, nil
	}
	var records []lineItemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode add-on line items: %w", err)
	}
	items := make([]pricing.LineItem, 0, len(records))
	for _, r := range records {
		items = append(items, pricing.LineItem{
			AddOnID:   r.AddOnID,
			Name:      r.Name,
			Quantity:  r.Quantity,
			UnitPrice: money.Cents(r.UnitPriceCents),
			Subtotal:  money.Cents(r.SubtotalCents),
		})
	}
	return items, nil
}

func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	p := b.Pricing()
	addOns, err := EncodeLineItems(p.AddOns)
	if err != nil {
		return sqlc.CreateBookingParams{}, err
	}

	c := b.Customer()
	e := b.Event()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		AssetID:          b.AssetID(),
		Status:           string(b.Status()),
		PaymentStatus:    string(b.PaymentStatus()),
		CustomerName:     c.Name,
		CustomerEmail:    c.Email,
		CustomerPhone:    c.Phone,
		EventDate:        pgconv.DateToPgtype(e.Date),
		EventStartTime:   pgconv.StringPtrToPgtype(e.StartTime),
		EventAddress:     e.Address,
		EventPostalCode:  e.PostalCode,
		GuestsCount:      pgconv.IntPtrToPgtype(e.GuestsCount),
		SpecialRequests:  pgconv.StringPtrToPgtype(e.SpecialRequests),
		RentalType:       p.RentalType.String(),
		DeliveryZone:     p.DeliveryZone.String(),
		BasePriceCents:   p.BasePrice.Int64(),
		DeliveryFeeCents: p.DeliveryFee.Int64(),
		AddOns:           addOns,
		AddOnsTotalCents: p.AddOnsTotal.Int64(),
		DiscountCents:    p.DiscountAmount.Int64(),
		PromoCode:        pgconv.StringPtrToPgtype(p.PromoCode),
		TotalCents:       p.TotalAmount.Int64(),
		DepositCents:     p.DepositAmount.Int64(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingToStatusParams(b *booking.Booking, from booking.Status) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		Status:          string(b.Status()),
		PaymentStatus:   string(b.PaymentStatus()),
		PaymentIntentID: pgconv.StringPtrToPgtype(b.PaymentIntentID()),
		DepositPaidAt:   pgconv.TimePtrToPgtype(b.DepositPaidAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
		ID:              b.ID(),
		FromStatus:      string(from),
	}
}

// PricingFromRow rebuilds the stored price snapshot.
func PricingFromRow(row sqlc.Bookings) (booking.Pricing, error) {
	items, err := DecodeLineItems(row.AddOns)
	if err != nil {
		return booking.Pricing{}, err
	}
	return booking.Pricing{
		RentalType:     pricing.RentalType(row.RentalType),
		DeliveryZone:   pricing.DeliveryZone(row.DeliveryZone),
		BasePrice:      money.Cents(row.BasePriceCents),
		DeliveryFee:    money.Cents(row.DeliveryFeeCents),
		AddOns:         items,
		AddOnsTotal:    money.Cents(row.AddOnsTotalCents),
		DiscountAmount: money.Cents(row.DiscountCents),
		PromoCode:      pgconv.StringPtrFromPgtype(row.PromoCode),
		TotalAmount:    money.Cents(row.TotalCents),
		DepositAmount:  money.Cents(row.DepositCents),
	}, nil
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	p, err := PricingFromRow(row)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		row.ID,
		row.AssetID,
		booking.Customer{Name: row.CustomerName, Email: row.CustomerEmail, Phone: row.CustomerPhone},
		booking.Event{
			Date:            pgconv.DateFromPgtype(row.EventDate),
			StartTime:       pgconv.StringPtrFromPgtype(row.EventStartTime),
			Address:         row.EventAddress,
			PostalCode:      row.EventPostalCode,
			GuestsCount:     pgconv.IntPtrFromPgtype(row.GuestsCount),
			SpecialRequests: pgconv.StringPtrFromPgtype(row.SpecialRequests),
		},
		p,
		booking.Status(row.Status),
		booking.PaymentStatus(row.PaymentStatus),
		pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		pgconv.StringPtrFromPgtype(row.PaymentIntentID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.DepositPaidAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
