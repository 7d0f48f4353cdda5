//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())

	r.CheckoutCreated("daily")
	r.CheckoutCreated("daily")
	r.CheckoutRejected("booked")
	r.PromoRedemption("applied")
	r.WebhookProcessed("checkout_completed", "confirmed")
	r.NotificationFailed("email")
	r.BookingsSwept(3)
	r.BookingsSwept(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.checkouts.WithLabelValues("daily")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejections.WithLabelValues("booked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.promos.WithLabelValues("applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.webhooks.WithLabelValues("checkout_completed", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notifications.WithLabelValues("email")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.swept))
}

func TestRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg)
	assert.Panics(t, func() { NewRecorder(reg) })
}
