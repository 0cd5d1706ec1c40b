package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
	CreateRide(c *ginext.Context)
	ListRides(c *ginext.Context)
	ListGroupedRides(c *ginext.Context)
	GetRide(c *ginext.Context)
	CancelRide(c *ginext.Context)
	DeleteRide(c *ginext.Context)
	BookRide(c *ginext.Context)
	SetCheckInStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

// Options configures endpoints outside the API group. A nil MetricsHandler
// leaves /metrics unregistered.
type Options struct {
	MetricsPath    string
	MetricsHandler http.Handler
}

func InitRouter(mode string, h Handler, opts Options, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Categories
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)

		// Rides
		api.POST("/rides", h.CreateRide)
		api.GET("/rides", h.ListRides)
		api.GET("/rides/grouped", h.ListGroupedRides)
		api.GET("/rides/:id", h.GetRide)
		api.POST("/rides/:id/cancel", h.CancelRide)
		api.DELETE("/rides/:id", h.DeleteRide)

		// Bookings
		api.POST("/rides/:id/bookings", h.BookRide)
		api.PATCH("/rides/:id/bookings/:bookingId", h.SetCheckInStatus)
		api.DELETE("/rides/:id/bookings/:bookingId", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		metrics := opts.MetricsHandler
		router.GET(path, func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
