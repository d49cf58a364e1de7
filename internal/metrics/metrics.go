package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bus_api_http_requests_total",
		Help: "The total number of handled HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bus_api_http_request_duration_seconds",
		Help:    "Time taken to serve HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"method", "route"})

	TripsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bus_api_trips_created_total",
		Help: "The total number of created trips",
	})

	PassengersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bus_api_passengers_created_total",
		Help: "The total number of registered passengers",
	})

	PaymentUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bus_api_payment_updates_total",
		Help: "Payment status updates by resulting status",
	}, []string{"status"})

	ManifestsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bus_api_manifests_rendered_total",
		Help: "Passenger manifest renders by outcome",
	}, []string{"outcome"})
)

// PaymentLabel is the label value used for a payment flag.
func PaymentLabel(hasPaid bool) string {
	if hasPaid {
		return "paid"
	}
	return "unpaid"
}
