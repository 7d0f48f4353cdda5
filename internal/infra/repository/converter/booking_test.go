//go:build unit

package converter_test

import (
	"testing"

	"bounce-booking/internal/domain/booking"
	"bounce-booking/internal/infra/repository/converter"
	"bounce-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRowRoundTrip(t *testing.T) {
	promo := "SPRING"
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Discount = 1000
		b.PromoCode = &promo
	})
	row := b.BuildInfra()

	got, err := converter.BookingFromRow(row)
	require.NoError(t, err)

	want := b.BuildDomain()
	assert.Equal(t, want.ID(), got.ID())
	assert.Equal(t, want.Pricing(), got.Pricing())
	assert.Equal(t, want.Event().Date, got.Event().Date)
	assert.Equal(t, *want.Event().StartTime, *got.Event().StartTime)
	assert.Equal(t, booking.StatusPending, got.Status())
	assert.Nil(t, got.PaymentSessionID())
}

func TestDecodeLineItems(t *testing.T) {
	items, err := converter.DecodeLineItems(nil)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = converter.DecodeLineItems([]byte(`{"not":"an array"}`))
	assert.Error(t, err)

	items, err = converter.DecodeLineItems([]byte(`[{"addOnId":"6f1c0a5e-0000-4000-8000-000000000001","name":"Generator","quantity":2,"unitPriceCents":1500,"subtotalCents":3000}]`))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 3000, items[0].Subtotal)
	assert.Equal(t, 2, items[0].Quantity)
}
