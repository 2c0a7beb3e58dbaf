package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels map onto the terminal states of a booking attempt.
const (
	OutcomePrepared       = "prepared"
	OutcomeNoAvailability = "no_availability"
	OutcomeCommitted      = "committed"
	OutcomeConflict       = "conflict"
	OutcomeFailed         = "failed"
)

type BookingMetrics struct {
	prepareTotal   *prometheus.CounterVec
	commitTotal    *prometheus.CounterVec
	rightsBypass   prometheus.Counter
	cancelledTotal prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	factory := promauto.With(reg)

	return &BookingMetrics{
		prepareTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking_engine",
			Name:      "prepare_total",
			Help:      "Booking preparations by outcome.",
		}, []string{"outcome"}),
		commitTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking_engine",
			Name:      "commit_total",
			Help:      "Booking commits by outcome.",
		}, []string{"outcome"}),
		rightsBypass: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "booking_engine",
			Name:      "rights_bypass_total",
			Help:      "Bookings where an entitlement waived the payment policy.",
		}),
		cancelledTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "booking_engine",
			Name:      "reservations_cancelled_total",
			Help:      "Reservations tombstoned by customer cancellation.",
		}),
	}
}

func (m *BookingMetrics) ObservePrepare(outcome string) {
	m.prepareTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveCommit(outcome string) {
	m.commitTotal.WithLabelValues(outcome).Inc()
}

func (m *BookingMetrics) ObserveRightsBypass() {
	m.rightsBypass.Inc()
}

func (m *BookingMetrics) ObserveCancellation() {
	m.cancelledTotal.Inc()
}
