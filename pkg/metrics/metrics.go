package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marbf",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status.",
		},
		[]string{"method", "status"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marbf",
			Name:      "booking_transitions_total",
			Help:      "Booking workflow transitions by target status.",
		},
		[]string{"to"},
	)

	penaltiesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marbf",
			Name:      "late_return_penalties_total",
			Help:      "Late return penalty records created by the scan.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingTransitions, penaltiesCreated)
	})
}

func IncHTTP(method, status string) {
	httpRequests.WithLabelValues(method, status).Inc()
}

func IncTransition(to string) {
	bookingTransitions.WithLabelValues(to).Inc()
}

func AddPenalties(n int) {
	penaltiesCreated.Add(float64(n))
}
