// Package handler exposes the HTTP surface of the reservation ledger: admin
// upserts for rooms and users, booking creation and the public listings.
// Responses carry snapshot data exactly as the ledger recorded it; live room
// or user state is never joined into booking payloads.
package handler

import (
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// roomResponse is the wire form of a room.
type roomResponse struct {
	RoomNumber    uint64 `json:"room_number"`
	RoomType      string `json:"room_type"`
	PricePerNight int64  `json:"price_per_night"`
}

// userResponse is the wire form of a user account.
type userResponse struct {
	UserID  uint64 `json:"user_id"`
	Balance int64  `json:"balance"`
}

// userSnapshotResponse is the user as captured at booking time.  The balance
// is the value before the booking's cost was deducted.
type userSnapshotResponse struct {
	UserID           uint64 `json:"user_id"`
	BalanceAtBooking int64  `json:"balance_at_booking"`
}

// bookingResponse is the wire form of a booking.  Room and user are the
// snapshots taken when the booking was made; dates render as "2006-01-02".
type bookingResponse struct {
	BookingID uint64               `json:"booking_id"`
	Room      roomResponse         `json:"room"`
	User      userSnapshotResponse `json:"user"`
	CheckIn   string               `json:"check_in"`
	CheckOut  string               `json:"check_out"`
	Nights    int64                `json:"nights"`
	TotalCost int64                `json:"total_cost"`
}

func newRoomResponse(r model.Room) roomResponse {
	return roomResponse{
		RoomNumber:    r.Number,
		RoomType:      string(r.Type),
		PricePerNight: r.PricePerNight,
	}
}

func newUserResponse(u model.User) userResponse {
	return userResponse{UserID: u.ID, Balance: u.Balance}
}

func newBookingResponse(b model.Booking) bookingResponse {
	return bookingResponse{
		BookingID: b.BookingID,
		Room: roomResponse{
			RoomNumber:    b.Room.RoomNumber,
			RoomType:      string(b.Room.RoomType),
			PricePerNight: b.Room.PricePerNight,
		},
		User: userSnapshotResponse{
			UserID:           b.User.UserID,
			BalanceAtBooking: b.User.BalanceAtBooking,
		},
		CheckIn:   model.FormatDate(b.CheckIn),
		CheckOut:  model.FormatDate(b.CheckOut),
		Nights:    b.Nights(),
		TotalCost: b.TotalCost,
	}
}
