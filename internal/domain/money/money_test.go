//go:build unit

package money_test

import (
	"testing"

	"bounce-booking/internal/domain/money"

	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	assert.Equal(t, money.Cents(8550), money.FromDollars(85.5))
	assert.Equal(t, money.Cents(1999), money.FromDollars(19.99))
	assert.Equal(t, 85.5, money.Cents(8550).Dollars())

	assert.Equal(t, "$85.00", money.Cents(8500).String())
	assert.Equal(t, "$0.05", money.Cents(5).String())
	assert.Equal(t, "-$12.30", money.Cents(-1230).String())
}

func TestCents_Share(t *testing.T) {
	testCases := []struct {
		amount  money.Cents
		percent int
		want    money.Cents
	}{
		{amount: 17000, percent: 50, want: 8500},
		{amount: 16999, percent: 50, want: 8500},
		{amount: 15300, percent: 50, want: 7650},
		{amount: 101, percent: 25, want: 25},
		{amount: 0, percent: 50, want: 0},
		{amount: 17000, percent: 100, want: 17000},
		{amount: -16999, percent: 50, want: -8500},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.amount.Share(tc.percent), "%d at %d%%", tc.amount, tc.percent)
	}
}

func TestCents_PercentOfAndClamp(t *testing.T) {
	assert.Equal(t, money.Cents(1700), money.Cents(17000).PercentOf(10))
	assert.Equal(t, money.Cents(1), money.Cents(5).PercentOf(10))
	assert.Equal(t, money.Cents(0), money.Cents(-5).Clamp(0, 100))
	assert.Equal(t, money.Cents(100), money.Cents(500).Clamp(0, 100))
	assert.Equal(t, money.Cents(42), money.Cents(42).Clamp(0, 100))
}
