//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"bounce-booking/internal/domain/money"
	"bounce-booking/internal/domain/promo"
	"bounce-booking/internal/pkg/clock"
	"bounce-booking/internal/usecase/queries"
	"bounce-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromoQueries_Validate(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	q := queries.NewPromoQueries(store.CommandReads(), clock.NewMockClock(testNow))

	percent, err := promo.NewPercentageDiscount(10)
	require.NoError(t, err)
	fixed, err := promo.NewFixedDiscount(2500)
	require.NoError(t, err)

	desc := "Ten percent off"
	welcome, err := promo.NewPromoCode(uuid.New(), "WELCOME10", percent, &desc, 0, nil, nil, nil)
	require.NoError(t, err)
	store.PutPromo(welcome)

	big, err := promo.NewPromoCode(uuid.New(), "BIGPARTY", fixed, nil, 20000, nil, nil, nil)
	require.NoError(t, err)
	store.PutPromo(big)

	flat, err := promo.NewPromoCode(uuid.New(), "FLAT25", fixed, nil, 0, nil, nil, nil)
	require.NoError(t, err)
	store.PutPromo(flat)

	future := testNow.Add(24 * time.Hour)
	early, err := promo.NewPromoCode(uuid.New(), "SUMMER", percent, nil, 0, nil, &future, nil)
	require.NoError(t, err)
	store.PutPromo(early)

	one := 1
	usedUp := promo.ReconstructPromoCode(uuid.New(), "ONCE", percent, nil, 0, &one, 1, nil, nil, true, testNow, testNow)
	store.PutPromo(usedUp)

	inactive := promo.ReconstructPromoCode(uuid.New(), "RETIRED", percent, nil, 0, nil, 0, nil, nil, false, testNow, testNow)
	store.PutPromo(inactive)

	t.Run("percentage code is case and space insensitive", func(t *testing.T) {
		got, err := q.Validate(ctx, "  welcome10 ", money.FromDollars(170))
		require.NoError(t, err)

		assert.True(t, got.Valid)
		assert.Equal(t, "WELCOME10", got.Code)
		assert.Equal(t, promo.DiscountPercentage, got.DiscountType)
		assert.Equal(t, 10.0, got.DiscountValue)
		assert.Equal(t, money.Cents(1700), got.DiscountAmount)
		assert.Equal(t, &desc, got.Description)
	})

	t.Run("fixed discount never exceeds the order", func(t *testing.T) {
		got, err := q.Validate(ctx, "FLAT25", money.FromDollars(20))
		require.NoError(t, err)
		assert.True(t, got.Valid)
		assert.Equal(t, money.Cents(2000), got.DiscountAmount)
	})

	rejections := []struct {
		name    string
		code    string
		amount  money.Cents
		message string
	}{
		{name: "unknown", code: "NOPE", amount: 17000, message: "Invalid promo code"},
		{name: "blank", code: "   ", amount: 17000, message: "Invalid promo code"},
		{name: "inactive", code: "RETIRED", amount: 17000, message: "Invalid promo code"},
		{name: "not yet active", code: "SUMMER", amount: 17000, message: "This promo code is not yet active"},
		{name: "usage limit", code: "ONCE", amount: 17000, message: "This promo code has reached its usage limit"},
		{name: "below minimum", code: "BIGPARTY", amount: 17000, message: "Minimum order of $200.00 required"},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			got, err := q.Validate(ctx, tc.code, tc.amount)
			require.NoError(t, err)
			assert.False(t, got.Valid)
			assert.Equal(t, tc.message, got.Error)
			assert.Zero(t, got.DiscountAmount)
		})
	}

	t.Run("storage failure is an error", func(t *testing.T) {
		failing := memstore.New()
		failing.FailReads = true
		_, err := queries.NewPromoQueries(failing.CommandReads(), clock.NewMockClock(testNow)).Validate(ctx, "WELCOME10", 17000)
		assert.Error(t, err)
	})
}
