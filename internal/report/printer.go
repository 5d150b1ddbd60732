// Package report renders the reservation ledger as human-readable text.
// Listings print newest first; booking lines show the snapshots captured at
// booking time, never the live room or user state.
package report

import (
	"fmt"
	"io"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Source supplies the newest-first listings the report renders.  The booking
// service satisfies it.
type Source interface {
	ListRoomsNewestFirst() []model.Room
	ListUsersNewestFirst() []model.User
	ListBookingsNewestFirst() []model.Booking
}

// PrintAll writes the rooms and bookings sections to w.
func PrintAll(w io.Writer, src Source) {
	fmt.Fprintf(w, "\n=== ROOMS (newest to oldest) ===\n")
	for _, r := range src.ListRoomsNewestFirst() {
		fmt.Fprintf(w, "Room #%d | Type: %s | Price/Night: %d\n",
			r.Number, r.Type, r.PricePerNight)
	}

	fmt.Fprintf(w, "\n=== BOOKINGS (newest to oldest) ===\n")
	for _, b := range src.ListBookingsNewestFirst() {
		fmt.Fprintf(w, "Booking #%d | Room: #%d (%s, %d/night) | User: #%d (balance at booking: %d) | Check-in: %s | Check-out: %s | Total: %d\n",
			b.BookingID,
			b.Room.RoomNumber, b.Room.RoomType, b.Room.PricePerNight,
			b.User.UserID, b.User.BalanceAtBooking,
			model.FormatDate(b.CheckIn), model.FormatDate(b.CheckOut),
			b.TotalCost)
	}
}

// PrintAllUsers writes the users section to w.
func PrintAllUsers(w io.Writer, src Source) {
	fmt.Fprintf(w, "\n=== USERS (newest to oldest) ===\n")
	for _, u := range src.ListUsersNewestFirst() {
		fmt.Fprintf(w, "User #%d | Balance: %d\n", u.ID, u.Balance)
	}
}
