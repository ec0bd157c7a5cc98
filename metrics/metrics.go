package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Name:      "bookings_created_total",
			Help:      "Successfully committed bookings.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected because the room was taken.",
		},
	)

	bookingsCheckedOut = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stayhub",
			Name:      "bookings_checked_out_total",
			Help:      "Completed checkouts.",
		},
	)
)

// Register registers the collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingConflicts, bookingsCheckedOut)
	})
}

func IncHTTP(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}

func IncBookingCreated() { bookingsCreated.Inc() }

func IncBookingConflict() { bookingConflicts.Inc() }

func IncBookingCheckedOut() { bookingsCheckedOut.Inc() }
