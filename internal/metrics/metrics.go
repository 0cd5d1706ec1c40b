package metrics

import (
	"strconv"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/wb-go/wbf/ginext"
)

const namespace = "weshare"

const healthPath = "/health"

type Metrics struct {
	skip map[string]struct{}

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	inFlight     prometheus.Gauge
	bookings     *prometheus.CounterVec
	checkIns     *prometheus.CounterVec
	occupancy    *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg. Requests to
// metricsPath and /health are not counted.
func New(reg prometheus.Registerer, metricsPath string) *Metrics {
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	m := &Metrics{
		skip: map[string]struct{}{metricsPath: {}, healthPath: {}},
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "HTTP requests being served.",
		}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome.",
		}, []string{"outcome"}),
		checkIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkins_total",
			Help:      "Check-in status changes by target status.",
		}, []string{"status"}),
		occupancy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ride_occupancy_ratio",
			Help:      "Booked seats divided by seats, per ride.",
		}, []string{"ride_id"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.inFlight, m.bookings, m.checkIns, m.occupancy)

	return m
}

func (m *Metrics) ObserveBooking(outcome string) {
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCheckIn(status domain.CheckInStatus) {
	m.checkIns.WithLabelValues(string(status)).Inc()
}

// ObserveOccupancy sets the ride's gauge. Closed rides are left to ForgetRide.
func (m *Metrics) ObserveOccupancy(ride *domain.Ride) {
	if ride.Seats <= 0 || ride.Status != domain.RideStatusActive {
		return
	}
	m.occupancy.WithLabelValues(ride.ID).Set(float64(ride.SeatCount()) / float64(ride.Seats))
}

// ForgetRide drops the occupancy series of a ride that no longer takes bookings.
func (m *Metrics) ForgetRide(rideID string) {
	m.occupancy.DeleteLabelValues(rideID)
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, skip := m.skip[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
