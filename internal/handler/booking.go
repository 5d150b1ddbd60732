package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
)

// BookingHandler creates bookings over HTTP.  On success it publishes a
// BookingCreatedEvent to the broker when one is configured; publishing is
// best-effort and never affects the committed booking.
type BookingHandler struct {
	Service *booking.Service // the reservation ledger core
	AMQPURL string           // broker URL; empty disables eventing
}

// NewBookingHandler constructs a BookingHandler and panics if the service is nil.
func NewBookingHandler(svc *booking.Service, amqpURL string) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, AMQPURL: amqpURL}
}

// CreateBooking handles POST /v1/bookings.  The body carries the user id,
// room number and the stay as "2006-01-02" date strings.  Validation
// failures map onto stable error codes:
//
//	invalid_date_range   → 400
//	user_not_found       → 404
//	room_not_found       → 404
//	insufficient_balance → 402 (payload carries required and available)
//	room_not_available   → 409 (payload carries the requested interval)
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var body struct {
		UserID     uint64 `json:"user_id"`
		RoomNumber uint64 `json:"room_number"`
		CheckIn    string `json:"check_in"`
		CheckOut   string `json:"check_out"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	checkIn, err := model.ParseDate(body.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date, want 2006-01-02"})
	}
	checkOut, err := model.ParseDate(body.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date, want 2006-01-02"})
	}

	b, err := h.Service.BookRoom(body.UserID, body.RoomNumber, checkIn, checkOut)
	if err != nil {
		return writeBookingError(c, err)
	}

	if h.AMQPURL != "" {
		ev := queue.NewBookingCreatedEvent(b)
		// fire and forget; the publisher logs its own failures
		go func() { _ = queue_publisher.PublishBookingCreated(context.Background(), h.AMQPURL, ev) }()
	}

	return c.JSON(http.StatusCreated, newBookingResponse(b))
}

// writeBookingError translates the core's typed errors into HTTP responses.
// Unknown errors should not happen; they map to 500 to stay visible.
func writeBookingError(c echo.Context, err error) error {
	var (
		invalidRange *booking.InvalidDateRangeError
		userMissing  *booking.UserNotFoundError
		roomMissing  *booking.RoomNotFoundError
		insufficient *booking.InsufficientBalanceError
		unavailable  *booking.RoomNotAvailableError
	)
	switch {
	case errors.As(err, &invalidRange):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "invalid_date_range",
			"message": err.Error(),
		})
	case errors.As(err, &userMissing):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":   "user_not_found",
			"message": err.Error(),
		})
	case errors.As(err, &roomMissing):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error":   "room_not_found",
			"message": err.Error(),
		})
	case errors.As(err, &insufficient):
		return c.JSON(http.StatusPaymentRequired, echo.Map{
			"error":     "insufficient_balance",
			"message":   err.Error(),
			"required":  insufficient.Required,
			"available": insufficient.Available,
		})
	case errors.As(err, &unavailable):
		return c.JSON(http.StatusConflict, echo.Map{
			"error":       "room_not_available",
			"message":     err.Error(),
			"room_number": unavailable.RoomNumber,
			"check_in":    model.FormatDate(unavailable.CheckIn),
			"check_out":   model.FormatDate(unavailable.CheckOut),
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
