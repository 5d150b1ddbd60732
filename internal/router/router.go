package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/hotel-reservation/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes wires every endpoint of the reservation API onto the
// provided Echo instance.  The health check stays outside the /v1 group so
// probes are never rate limited; everything else lives under /v1 behind the
// given middleware (typically the Redis rate limiter).
func RegisterRoutes(e *echo.Echo, admin *handler.AdminHandler, bookings *handler.BookingHandler, public *handler.PublicHandler, mw ...echo.MiddlewareFunc) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)

	g := e.Group("/v1", mw...)

	// Administrative upserts.  PUT is idempotent: repeating the same request
	// leaves the same state behind.
	g.PUT("/rooms/:number", admin.SetRoom)
	g.PUT("/users/:id", admin.SetUser)

	// Booking creation runs the validation pipeline and commits atomically.
	g.POST("/bookings", bookings.CreateBooking)

	// Read-only listings, newest first.
	g.GET("/rooms", public.GetRooms)
	g.GET("/users", public.GetUsers)
	g.GET("/bookings", public.GetBookings)
}
