package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	Registrations  *prometheus.CounterVec
	ActiveVisitors prometheus.Gauge
	SeatsAvailable *prometheus.GaugeVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		Registrations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "groupsignup_registrations_total",
			Help: "Registration attempts by outcome",
		}, []string{"outcome"}),
		ActiveVisitors: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "groupsignup_active_visitors",
			Help: "Visitors seen within the liveness window",
		}),
		SeatsAvailable: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "groupsignup_seats_available",
			Help: "Remaining seats per group",
		}, []string{"group"}),
	}
}
