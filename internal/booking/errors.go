// Package booking implements the reservation core: the validation pipeline
// that decides whether a booking may proceed, and the commit step that
// deducts the balance and records the booking against frozen snapshots.
package booking

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// The error types below carry the structured fields of each failure so that
// callers can branch on the kind with errors.As and read ids, amounts and
// dates programmatically instead of parsing messages.  Every failure aborts
// the operation before any mutation; none is retried or recovered
// internally.

// InvalidDateRangeError reports a check-in that is not strictly before the
// check-out.  Equal dates fail too: a zero-night stay is invalid.
type InvalidDateRangeError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("invalid date range: check-in %s must be before check-out %s",
		model.FormatDate(e.CheckIn), model.FormatDate(e.CheckOut))
}

// UserNotFoundError reports a user id absent from the store.
type UserNotFoundError struct {
	UserID uint64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user #%d not found", e.UserID)
}

// RoomNotFoundError reports a room number absent from the store.
type RoomNotFoundError struct {
	RoomNumber uint64
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room #%d not found", e.RoomNumber)
}

// InsufficientBalanceError reports a computed cost exceeding the user's
// current balance.
type InsufficientBalanceError struct {
	UserID    uint64
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("user #%d has insufficient balance: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// RoomNotAvailableError reports that the requested interval overlaps an
// existing booking for the room.
type RoomNotAvailableError struct {
	RoomNumber uint64
	CheckIn    time.Time
	CheckOut   time.Time
}

func (e *RoomNotAvailableError) Error() string {
	return fmt.Sprintf("room #%d is not available from %s to %s",
		e.RoomNumber, model.FormatDate(e.CheckIn), model.FormatDate(e.CheckOut))
}
