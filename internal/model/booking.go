package model

import "time"

// Booking records one committed reservation.  It is immutable after
// creation: no field is ever mutated post-commit, and it references frozen
// snapshots rather than the live Room and User, so later administrative
// changes are never observable through it.  The total cost is computed once
// at booking time and stored, never recomputed from the snapshot.
//
// Fields:
//  BookingID – monotonically increasing identifier assigned by the store.
//  Room      – snapshot of the room at booking time.
//  User      – snapshot of the user at booking time (balance before
//              deduction).
//  CheckIn   – first night of the stay (calendar date, UTC midnight).
//  CheckOut  – day of departure; the night before it is the last one
//              occupied (half-open interval).
//  TotalCost – nights × price-per-night at booking time.
type Booking struct {
	BookingID uint64
	Room      RoomSnapshot
	User      UserSnapshot
	CheckIn   time.Time
	CheckOut  time.Time
	TotalCost int64
}

// Nights returns the number of nights between check-in and check-out.
func (b Booking) Nights() int64 {
	return NightsBetween(b.CheckIn, b.CheckOut)
}

// Overlaps reports whether the booking's stay intersects the given interval.
// Both intervals are half-open ([checkIn, checkOut)): a stay whose check-in
// equals another stay's check-out is back-to-back, not overlapping.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}
