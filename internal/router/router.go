package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateRoute(c *ginext.Context)
	ListRoutes(c *ginext.Context)
	DeleteRoute(c *ginext.Context)
	CreateBus(c *ginext.Context)
	ListBuses(c *ginext.Context)
	DeleteBus(c *ginext.Context)
	CreateSchedule(c *ginext.Context)
	ListSchedules(c *ginext.Context)
	GetSchedule(c *ginext.Context)
	GetAvailableSeats(c *ginext.Context)
	GetScheduleBookings(c *ginext.Context)
	DeleteSchedule(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Routes
		api.POST("/routes", h.CreateRoute)
		api.GET("/routes", h.ListRoutes)
		api.DELETE("/routes/:id", h.DeleteRoute)

		// Buses
		api.POST("/buses", h.CreateBus)
		api.GET("/buses", h.ListBuses)
		api.DELETE("/buses/:id", h.DeleteBus)

		// Schedules
		api.POST("/schedules", h.CreateSchedule)
		api.GET("/schedules", h.ListSchedules)
		api.GET("/schedules/:id", h.GetSchedule)
		api.GET("/schedules/:id/seats", h.GetAvailableSeats)
		api.GET("/schedules/:id/bookings", h.GetScheduleBookings)
		api.DELETE("/schedules/:id", h.DeleteSchedule)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
