//go:build unit

package pricing_test

import (
	"testing"

	"bounce-booking/internal/domain/addon"
	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *pricing.Engine {
	t.Helper()
	e, err := pricing.NewEngine(pricing.Settings{
		Rates: map[pricing.RentalType]money.Cents{
			pricing.RentalDaily:   15000,
			pricing.RentalWeekend: 25000,
			pricing.RentalWeekly:  60000,
		},
		LocalFee:   2000,
		OutsideFee: 4000,
		LocalZips:  []string{"75001", " 75002-0001 "},
	})
	require.NoError(t, err)
	return e
}

func TestEngine_Price(t *testing.T) {
	e := newEngine(t)

	t.Run("daily rental in the local zone", func(t *testing.T) {
		q := e.Price(pricing.RentalDaily, "75001", nil, nil)

		assert.Equal(t, pricing.RentalDaily, q.RentalType)
		assert.Equal(t, money.Cents(15000), q.BasePrice)
		assert.Equal(t, pricing.ZoneLocal, q.DeliveryZone)
		assert.Equal(t, money.Cents(2000), q.DeliveryFee)
		assert.Empty(t, q.AddOns)
		assert.Equal(t, money.Cents(17000), q.Subtotal)
	})

	t.Run("postal codes are normalized", func(t *testing.T) {
		zone, fee := e.Zone("75002")
		assert.Equal(t, pricing.ZoneLocal, zone)
		assert.Equal(t, money.Cents(2000), fee)

		zone, _ = e.Zone("75001-9999")
		assert.Equal(t, pricing.ZoneLocal, zone)

		zone, fee = e.Zone("90210")
		assert.Equal(t, pricing.ZoneOutside, zone)
		assert.Equal(t, money.Cents(4000), fee)

		zone, _ = e.Zone("")
		assert.Equal(t, pricing.ZoneOutside, zone)
	})

	t.Run("unknown rental type falls back to the cheapest tier", func(t *testing.T) {
		q := e.Price(pricing.RentalType("monthly"), "75001", nil, nil)
		assert.Equal(t, pricing.RentalDaily, q.RentalType)
		assert.Equal(t, money.Cents(15000), q.BasePrice)
	})

	t.Run("add-ons are merged, clamped and filtered", func(t *testing.T) {
		chairs, err := addon.NewAddOn(uuid.New(), "Chairs", "seating", 200, 20, true)
		require.NoError(t, err)
		tent, err := addon.NewAddOn(uuid.New(), "Tent", "shade", 7500, 1, false)
		require.NoError(t, err)

		q := e.Price(pricing.RentalWeekend, "90210", []pricing.AddOnSelection{
			{ID: chairs.ID(), Quantity: 15},
			{ID: tent.ID(), Quantity: 1},
			{ID: chairs.ID(), Quantity: 10},
			{ID: uuid.New(), Quantity: 3},
		}, []*addon.AddOn{chairs, tent})

		require.Len(t, q.AddOns, 1)
		assert.Equal(t, "Chairs", q.AddOns[0].Name)
		assert.Equal(t, 20, q.AddOns[0].Quantity)
		assert.Equal(t, money.Cents(4000), q.AddOns[0].Subtotal)
		assert.Equal(t, money.Cents(4000), q.AddOnsTotal)
		assert.Equal(t, money.Cents(25000+4000+4000), q.Subtotal)
	})
}

func TestFinalize(t *testing.T) {
	quote := pricing.Quote{BasePrice: 15000, DeliveryFee: 2000, Subtotal: 17000}

	testCases := []struct {
		name        string
		discount    money.Cents
		percent     int
		wantTotal   money.Cents
		wantDeposit money.Cents
		wantBalance money.Cents
	}{
		{name: "no discount", discount: 0, percent: 50, wantTotal: 17000, wantDeposit: 8500, wantBalance: 8500},
		{name: "ten percent promo", discount: 1700, percent: 50, wantTotal: 15300, wantDeposit: 7650, wantBalance: 7650},
		{name: "discount larger than order", discount: 99999, percent: 50, wantTotal: 0, wantDeposit: 0, wantBalance: 0},
		{name: "negative discount ignored", discount: -500, percent: 50, wantTotal: 17000, wantDeposit: 8500, wantBalance: 8500},
		{name: "odd cents round the deposit", discount: 1, percent: 50, wantTotal: 16999, wantDeposit: 8500, wantBalance: 8499},
		{name: "full prepayment", discount: 0, percent: 100, wantTotal: 17000, wantDeposit: 17000, wantBalance: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.Finalize(quote, tc.discount, tc.percent)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, got.TotalAmount)
			assert.Equal(t, tc.wantDeposit, got.DepositAmount)
			assert.Equal(t, tc.wantBalance, got.BalanceDue)
			assert.Equal(t, got.TotalAmount, got.DepositAmount+got.BalanceDue)
		})
	}

	t.Run("deposit percent out of range", func(t *testing.T) {
		for _, p := range []int{0, -10, 101} {
			_, err := pricing.Finalize(quote, 0, p)
			assert.ErrorIs(t, err, pricing.ErrInvalidDepositRate)
		}
	})
}

func TestNewEngine_Validation(t *testing.T) {
	_, err := pricing.NewEngine(pricing.Settings{})
	assert.ErrorIs(t, err, pricing.ErrNoRates)

	_, err = pricing.NewEngine(pricing.Settings{Rates: map[pricing.RentalType]money.Cents{pricing.RentalDaily: -1}})
	assert.ErrorIs(t, err, pricing.ErrNegativeRate)

	_, err = pricing.NewEngine(pricing.Settings{Rates: map[pricing.RentalType]money.Cents{pricing.RentalDaily: 100}, LocalFee: -5})
	assert.ErrorIs(t, err, pricing.ErrNegativeRate)

	_, err = pricing.NewEngine(pricing.Settings{Rates: map[pricing.RentalType]money.Cents{"monthly": 100}})
	assert.ErrorIs(t, err, pricing.ErrNoRates)
}

func TestParseRentalType(t *testing.T) {
	rt, ok := pricing.ParseRentalType(" Weekend ")
	assert.True(t, ok)
	assert.Equal(t, pricing.RentalWeekend, rt)

	_, ok = pricing.ParseRentalType("hourly")
	assert.False(t, ok)
}
