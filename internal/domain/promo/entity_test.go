//go:build unit

package promo_test

import (
	"testing"
	"time"

	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/promo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, time.May, 1, 12, 0, 0, 0, time.UTC)

func TestNewPromoCode(t *testing.T) {
	pct, err := promo.NewPercentageDiscount(10)
	require.NoError(t, err)

	p, err := promo.NewPromoCode(uuid.New(), " welcome10 ", pct, nil, -100, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, promo.Code("WELCOME10"), p.Code())
	assert.True(t, p.IsActive())
	assert.Zero(t, p.MinOrderAmount())

	_, err = promo.NewPromoCode(uuid.New(), "no spaces", pct, nil, 0, nil, nil, nil)
	assert.ErrorIs(t, err, promo.ErrInvalidCodeFormat)

	from, until := now, now.Add(-time.Hour)
	_, err = promo.NewPromoCode(uuid.New(), "WINDOW", pct, nil, 0, nil, &from, &until)
	assert.ErrorIs(t, err, promo.ErrInvalidWindow)

	zero := 0
	_, err = promo.NewPromoCode(uuid.New(), "NEVER", pct, nil, 0, &zero, nil, nil)
	assert.ErrorIs(t, err, promo.ErrInvalidMaxUses)
}

func TestDiscounts(t *testing.T) {
	_, err := promo.NewPercentageDiscount(101)
	assert.ErrorIs(t, err, promo.ErrInvalidDiscountPercent)
	_, err = promo.NewFixedDiscount(-1)
	assert.ErrorIs(t, err, promo.ErrInvalidDiscountAmount)

	amount, percent := int64(500), 5.0
	_, err = promo.NewDiscount(&amount, &percent)
	assert.ErrorIs(t, err, promo.ErrAmbiguousDiscount)
	_, err = promo.NewDiscount(nil, nil)
	assert.ErrorIs(t, err, promo.ErrMissingDiscount)

	pct, err := promo.NewPercentageDiscount(12.5)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(2125), pct.AmountFor(17000))

	fixed, err := promo.NewFixedDiscount(5000)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(3000), fixed.AmountFor(3000))
	assert.Equal(t, 50.0, fixed.Value())
	assert.Zero(t, fixed.AmountFor(0))
}

func TestPromoCode_Validate(t *testing.T) {
	pct, err := promo.NewPercentageDiscount(10)
	require.NoError(t, err)

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	one := 1

	testCases := []struct {
		name       string
		active     bool
		from       *time.Time
		until      *time.Time
		maxUses    *int
		usesCount  int
		minimum    money.Cents
		order      money.Cents
		wantErr    error
		wantMessage string
	}{
		{name: "valid", active: true, order: 17000},
		{name: "inactive beats everything", active: false, until: &past, maxUses: &one, usesCount: 1, order: 17000, wantErr: promo.ErrInactive, wantMessage: "Invalid promo code"},
		{name: "not yet active", active: true, from: &future, order: 17000, wantErr: promo.ErrNotYetActive, wantMessage: "This promo code is not yet active"},
		{name: "expired before usage limit", active: true, until: &past, maxUses: &one, usesCount: 1, order: 17000, wantErr: promo.ErrExpired, wantMessage: "This promo code has expired"},
		{name: "usage limit before minimum", active: true, maxUses: &one, usesCount: 1, minimum: 50000, order: 17000, wantErr: promo.ErrUsageLimitReached, wantMessage: "This promo code has reached its usage limit"},
		{name: "below minimum", active: true, minimum: 20000, order: 17000, wantErr: promo.ErrMinimumOrderNotMet, wantMessage: "Minimum order of $200.00 required"},
		{name: "exactly the minimum", active: true, minimum: 17000, order: 17000},
		{name: "open window bounds are inclusive of now", active: true, from: &now, until: &now, order: 17000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := promo.ReconstructPromoCode(uuid.New(), "CODE", pct, nil, tc.minimum, tc.maxUses, tc.usesCount, tc.from, tc.until, tc.active, now, now)

			err := p.Validate(now, tc.order)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantMessage, promo.Message(err))
		})
	}
}
