package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func TestMetrics_ObserveBooking(t *testing.T) {
	m := New(prometheus.NewRegistry(), "/metrics")

	m.ObserveBooking("booked")
	m.ObserveBooking("booked")
	m.ObserveBooking("full")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues("booked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("full")))
}

func TestMetrics_ObserveCheckIn(t *testing.T) {
	m := New(prometheus.NewRegistry(), "/metrics")

	m.ObserveCheckIn(domain.CheckInCheckedIn)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkIns.WithLabelValues("checked-in")))
}

func TestMetrics_ObserveOccupancy(t *testing.T) {
	m := New(prometheus.NewRegistry(), "/metrics")
	ride := &domain.Ride{
		ID:       "r1",
		Seats:    4,
		Status:   domain.RideStatusActive,
		Bookings: []domain.Booking{{ID: "b1"}},
	}

	m.ObserveOccupancy(ride)
	assert.Equal(t, 0.25, testutil.ToFloat64(m.occupancy.WithLabelValues("r1")))

	m.ObserveOccupancy(&domain.Ride{ID: "r2", Status: domain.RideStatusActive})
	assert.Equal(t, 1, testutil.CollectAndCount(m.occupancy))

	m.ForgetRide("r1")
	assert.Equal(t, 0, testutil.CollectAndCount(m.occupancy))
}

func TestMetrics_ObserveOccupancy_ClosedRideStaysForgotten(t *testing.T) {
	m := New(prometheus.NewRegistry(), "/metrics")
	ride := &domain.Ride{
		ID:       "r1",
		Seats:    4,
		Status:   domain.RideStatusActive,
		Bookings: []domain.Booking{{ID: "b1"}},
	}
	m.ObserveOccupancy(ride)

	ride.Status = domain.RideStatusCancelled
	m.ForgetRide("r1")
	m.ObserveOccupancy(ride)

	assert.Equal(t, 0, testutil.CollectAndCount(m.occupancy))
}

func TestMetrics_Middleware(t *testing.T) {
	m := New(prometheus.NewRegistry(), "/metrics")

	r := ginext.New("test")
	r.Use(m.Middleware())
	r.GET("/api/rides/:id", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"id": c.Param("id")})
	})
	r.GET("/health", func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})

	for _, path := range []string{"/api/rides/1", "/api/rides/2", "/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/rides/:id", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpRequests))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
}

func TestMetrics_Middleware_SkipsExactPaths(t *testing.T) {
	m := New(prometheus.NewRegistry(), "/internal/prom")

	r := ginext.New("test")
	r.Use(m.Middleware())
	for _, path := range []string{"/internal/prom", "/metrics", "/metrics-report", "/healthz"} {
		r.GET(path, func(c *ginext.Context) {
			c.Status(http.StatusOK)
		})
	}

	for _, path := range []string{"/internal/prom", "/metrics", "/metrics-report", "/healthz"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/internal/prom", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/metrics", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/metrics-report", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/healthz", "200")))
}
