package pricing

import (
	"errors"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrNoRates            = errors.New("at least one rental rate must be configured")
	ErrNegativeRate       = errors.New("rental rates and delivery fees cannot be negative")
	ErrInvalidDepositRate = errors.New("deposit percent must be within 1..100")
)

type Settings struct {
	Rates      map[RentalType]money.Cents
	LocalFee   money.Cents
	OutsideFee money.Cents
	LocalZips  []string
}

// Engine prices a rental. It holds only immutable configuration and is safe
// for concurrent use.
type Engine struct {
	rates      map[RentalType]money.Cents
	cheapest   RentalType
	localFee   money.Cents
	outsideFee money.Cents
	localZips  map[string]struct{}
}

func NewEngine(s Settings) (*Engine, error) {
	if len(s.Rates) == 0 {
		return nil, ErrNoRates
	}
	if s.LocalFee < 0 || s.OutsideFee < 0 {
		return nil, ErrNegativeRate
	}

	rates := make(map[RentalType]money.Cents, len(s.Rates))
	for rt, price := range s.Rates {
		if price < 0 {
			return nil, ErrNegativeRate
		}
		rates[rt] = price
	}

	cheapest := RentalType("")
	for _, rt := range rentalTypeOrder {
		price, ok := rates[rt]
		if !ok {
			continue
		}
		if cheapest == "" || price < rates[cheapest] {
			cheapest = rt
		}
	}
	if cheapest == "" {
		return nil, ErrNoRates
	}

	zips := make(map[string]struct{}, len(s.LocalZips))
	for _, z := range s.LocalZips {
		if n := NormalizePostalCode(z); n != "" {
			zips[n] = struct{}{}
		}
	}

	return &Engine{
		rates:      rates,
		cheapest:   cheapest,
		localFee:   s.LocalFee,
		outsideFee: s.OutsideFee,
		localZips:  zips,
	}, nil
}

// Price computes the pre-discount quote. Unknown rental types fall back to the
// cheapest configured tier, which is reported in the result. Add-ons not in the
// catalog or inactive are dropped and quantities are clamped to the catalog maximum.
func (e *Engine) Price(rentalType RentalType, postalCode string, selections []AddOnSelection, catalog []*addon.AddOn) Quote {
	rt := rentalType
	base, ok := e.rates[rt]
	if !ok {
		rt = e.cheapest
		base = e.rates[rt]
	}

	zone, fee := e.Zone(postalCode)
	items := priceAddOns(selections, catalog)

	var addOnsTotal money.Cents
	for _, it := range items {
		addOnsTotal += it.Subtotal
	}

	return Quote{
		RentalType:   rt,
		BasePrice:    base,
		DeliveryZone: zone,
		DeliveryFee:  fee,
		AddOns:       items,
		AddOnsTotal:  addOnsTotal,
		Subtotal:     base + fee + addOnsTotal,
	}
}

func (e *Engine) Zone(postalCode string) (DeliveryZone, money.Cents) {
	if _, ok := e.localZips[NormalizePostalCode(postalCode)]; ok {
		return ZoneLocal, e.localFee
	}
	return ZoneOutside, e.outsideFee
}

// Finalize applies a discount and splits the total into deposit and balance.
// The discount is clamped to [0, subtotal].
func Finalize(q Quote, discount money.Cents, depositPercent int) (Totals, error) {
	if depositPercent <= 0 || depositPercent > 100 {
		return Totals{}, ErrInvalidDepositRate
	}
	discount = discount.Clamp(0, q.Subtotal)
	total := q.Subtotal - discount
	deposit := total.Share(depositPercent)
	return Totals{
		DiscountAmount: discount,
		TotalAmount:    total,
		DepositAmount:  deposit,
		BalanceDue:     total - deposit,
	}, nil
}

func priceAddOns(selections []AddOnSelection, catalog []*addon.AddOn) []LineItem {
	if len(selections) == 0 {
		return []LineItem{}
	}

	byID := make(map[uuid.UUID]*addon.AddOn, len(catalog))
	for _, a := range catalog {
		if a != nil && a.IsActive() {
			byID[a.ID()] = a
		}
	}

	// Merge duplicates while keeping first-seen order.
	order := make([]uuid.UUID, 0, len(selections))
	qty := make(map[uuid.UUID]int, len(selections))
	for _, s := range selections {
		if _, ok := byID[s.ID]; !ok {
			continue
		}
		if _, seen := qty[s.ID]; !seen {
			order = append(order, s.ID)
		}
		qty[s.ID] += s.Quantity
	}

	items := make([]LineItem, 0, len(order))
	for _, id := range order {
		a := byID[id]
		q := a.ClampQuantity(qty[id])
		if q == 0 {
			continue
		}
		items = append(items, LineItem{
			AddOnID:   a.ID(),
			Name:      a.Name(),
			Quantity:  q,
			UnitPrice: a.PricePerUnit(),
			Subtotal:  a.PricePerUnit() * money.Cents(q),
		})
	}
	return items
}
