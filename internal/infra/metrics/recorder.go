package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bounce_booking"

// Recorder exports booking flow counters.
type Recorder struct {
	checkouts     *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	promos        *prometheus.CounterVec
	webhooks      *prometheus.CounterVec
	notifications *prometheus.CounterVec
	swept         prometheus.Counter
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		checkouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_created_total",
				Help:      "Checkout sessions created by rental type.",
			},
			[]string{"rental_type"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkouts_rejected_total",
				Help:      "Checkout attempts rejected by reason.",
			},
			[]string{"reason"},
		),
		promos: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "promo_redemptions_total",
				Help:      "Promo code outcomes at checkout.",
			},
			[]string{"outcome"},
		),
		webhooks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_events_total",
				Help:      "Payment webhook events by type and outcome.",
			},
			[]string{"event_type", "outcome"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notification_failures_total",
				Help:      "Failed confirmation side effects by channel.",
			},
			[]string{"channel"},
		),
		swept: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_swept_total",
				Help:      "Abandoned pending bookings cancelled by the sweeper.",
			},
		),
	}
	reg.MustRegister(r.checkouts, r.rejections, r.promos, r.webhooks, r.notifications, r.swept)
	return r
}

func (r *Recorder) CheckoutCreated(rentalType string) {
	r.checkouts.WithLabelValues(rentalType).Inc()
}

func (r *Recorder) CheckoutRejected(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}

func (r *Recorder) PromoRedemption(outcome string) {
	r.promos.WithLabelValues(outcome).Inc()
}

func (r *Recorder) WebhookProcessed(eventType, outcome string) {
	r.webhooks.WithLabelValues(eventType, outcome).Inc()
}

func (r *Recorder) NotificationFailed(channel string) {
	r.notifications.WithLabelValues(channel).Inc()
}

func (r *Recorder) BookingsSwept(count int) {
	if count > 0 {
		r.swept.Add(float64(count))
	}
}
