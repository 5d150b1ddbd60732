package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// PublicHandler serves the read-only listings.  All three endpoints return
// newest-first items wrapped in an "items" array.
type PublicHandler struct {
	Service *booking.Service
}

// NewPublicHandler constructs a PublicHandler and panics if the service is nil.
func NewPublicHandler(svc *booking.Service) *PublicHandler {
	if svc == nil {
		panic("nil service passed to NewPublicHandler")
	}
	return &PublicHandler{Service: svc}
}

// GetRooms handles GET /v1/rooms.
func (h *PublicHandler) GetRooms(c echo.Context) error {
	rooms := h.Service.ListRoomsNewestFirst()
	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, newRoomResponse(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetUsers handles GET /v1/users.
func (h *PublicHandler) GetUsers(c echo.Context) error {
	users := h.Service.ListUsersNewestFirst()
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetBookings handles GET /v1/bookings.  Bookings render the snapshots
// taken at booking time, not the entities' live state.
func (h *PublicHandler) GetBookings(c echo.Context) error {
	bookings := h.Service.ListBookingsNewestFirst()
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}
