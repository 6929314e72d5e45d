package inventory

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Metrics counts reservation outcomes.
type Metrics struct {
	Reservations *prometheus.CounterVec
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Reservations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_total",
				Help: "Stock reservation attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.Reservations)
	return m
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.Reservations.WithLabelValues(outcome).Inc()
}
