// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BookingCreatedEvent is published when a booking is successfully created.
// It carries the booking snapshot so downstream consumers can log, notify or
// trigger analytics without querying the ledger.
type BookingCreatedEvent struct {
	EventID          string `json:"event_id"`
	BookingID        uint64 `json:"booking_id"`
	RoomNumber       uint64 `json:"room_number"`
	RoomType         string `json:"room_type"`
	PricePerNight    int64  `json:"price_per_night"`
	UserID           uint64 `json:"user_id"`
	BalanceAtBooking int64  `json:"balance_at_booking"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Nights           int64  `json:"nights"`
	TotalCost        int64  `json:"total_cost"`
	CreatedAt        string `json:"created_at"`
}

// NewBookingCreatedEvent builds the event for a freshly created booking.
func NewBookingCreatedEvent(b model.Booking) BookingCreatedEvent {
	return BookingCreatedEvent{
		EventID:          uuid.NewString(),
		BookingID:        b.BookingID,
		RoomNumber:       b.Room.RoomNumber,
		RoomType:         string(b.Room.RoomType),
		PricePerNight:    b.Room.PricePerNight,
		UserID:           b.User.UserID,
		BalanceAtBooking: b.User.BalanceAtBooking,
		CheckIn:          model.FormatDate(b.CheckIn),
		CheckOut:         model.FormatDate(b.CheckOut),
		Nights:           b.Nights(),
		TotalCost:        b.TotalCost,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
}
