package model

// User is the live, mutable state of a guest.  The balance is held in the
// smallest currency unit and is changed either by an administrative upsert
// or by the deduction performed when a booking commits.
//
// Fields:
//  ID      – unique user identifier.
//  Balance – current balance in the smallest currency unit.
type User struct {
	ID      uint64
	Balance int64
}

// Snapshot freezes the user's current state into an immutable value.
// The captured balance is the balance before any deduction for the booking
// being created.
func (u User) Snapshot() UserSnapshot {
	return UserSnapshot{
		UserID:           u.ID,
		BalanceAtBooking: u.Balance,
	}
}

// UserSnapshot is an immutable copy of a user's fields taken at booking
// time.  Later balance changes are never observable through it.
type UserSnapshot struct {
	UserID           uint64
	BalanceAtBooking int64
}
