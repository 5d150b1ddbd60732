package handler

import (
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// AdminHandler exposes the administrative upserts for rooms and users.
// Both operations create the entity when its key is unknown and update it
// otherwise; neither has domain failure modes, so they always answer 200
// once the request parses.
type AdminHandler struct {
	Service *booking.Service // the reservation ledger core
}

// NewAdminHandler constructs an AdminHandler and panics if the service is nil.
func NewAdminHandler(svc *booking.Service) *AdminHandler {
	if svc == nil {
		panic("nil service passed to NewAdminHandler")
	}
	return &AdminHandler{Service: svc}
}

// SetRoom handles PUT /v1/rooms/:number.  The body must carry a valid room
// type and a price per night; an unknown room type is rejected here before
// the core is invoked.
func (h *AdminHandler) SetRoom(c echo.Context) error {
	number, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room number"})
	}
	var body struct {
		RoomType      string `json:"room_type"`
		PricePerNight int64  `json:"price_per_night"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	roomType, err := model.ParseRoomType(body.RoomType)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room type"})
	}

	room := h.Service.SetRoom(number, roomType, body.PricePerNight)
	return c.JSON(http.StatusOK, newRoomResponse(room))
}

// SetUser handles PUT /v1/users/:id.  The body carries the new balance,
// which replaces the current one outright.
func (h *AdminHandler) SetUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var body struct {
		Balance int64 `json:"balance"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	user := h.Service.SetUser(id, body.Balance)
	return c.JSON(http.StatusOK, newUserResponse(user))
}
