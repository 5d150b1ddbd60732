// Package store holds the current state of rooms and users and the
// append-only list of bookings.  Storage is deliberately simple: linear
// lists scanned with predicates, preserving insertion order so that callers
// can render newest-first views.  The store itself performs no validation
// and no locking; the booking service is the concurrency boundary and is the
// only writer.
package store

import "github.com/iliyamo/hotel-reservation/internal/model"

// Store owns the rooms, users and bookings lists.  All accessors return
// copies: handing out a live reference would let callers bypass the booking
// validator by mutating internal state directly.
type Store struct {
	rooms         []model.Room
	users         []model.User
	bookings      []model.Booking
	lastBookingID uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// UpsertRoom creates the room when the number is unknown, otherwise updates
// type and price in place.  It returns the resulting room state and whether
// a new room was created.  Existing bookings are unaffected by construction:
// they hold snapshots, not references.
func (s *Store) UpsertRoom(number uint64, roomType model.RoomType, pricePerNight int64) (model.Room, bool) {
	for i := range s.rooms {
		if s.rooms[i].Number == number {
			s.rooms[i].Type = roomType
			s.rooms[i].PricePerNight = pricePerNight
			return s.rooms[i], false
		}
	}
	room := model.Room{Number: number, Type: roomType, PricePerNight: pricePerNight}
	s.rooms = append(s.rooms, room)
	return room, true
}

// UpsertUser creates the user when the id is unknown, otherwise replaces the
// balance.  It returns the resulting user state and whether a new user was
// created.
func (s *Store) UpsertUser(id uint64, balance int64) (model.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Balance = balance
			return s.users[i], false
		}
	}
	user := model.User{ID: id, Balance: balance}
	s.users = append(s.users, user)
	return user, true
}

// FindRoom looks up a room by number.  The returned value is a copy.
func (s *Store) FindRoom(number uint64) (model.Room, bool) {
	for _, r := range s.rooms {
		if r.Number == number {
			return r, true
		}
	}
	return model.Room{}, false
}

// FindUser looks up a user by id.  The returned value is a copy.
func (s *Store) FindUser(id uint64) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// SetUserBalance overwrites the balance of an existing user.  It reports
// whether the user was found.
func (s *Store) SetUserBalance(id uint64, balance int64) bool {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Balance = balance
			return true
		}
	}
	return false
}

// NextBookingID advances the dedicated booking-id counter and returns the
// new value.  The counter is independent of the list length, so ids stay
// stable no matter what happens to the list later.  Callers must only call
// this when a booking is actually being committed: ids are gapless across
// successful bookings precisely because failed attempts never reach this
// point.
func (s *Store) NextBookingID() uint64 {
	s.lastBookingID++
	return s.lastBookingID
}

// AppendBooking appends a committed booking.  The list is append-only;
// insertion order is creation order.
func (s *Store) AppendBooking(b model.Booking) {
	s.bookings = append(s.bookings, b)
}

// BookingsForRoom returns the bookings whose room snapshot carries the given
// room number, in creation order.
func (s *Store) BookingsForRoom(number uint64) []model.Booking {
	var out []model.Booking
	for _, b := range s.bookings {
		if b.Room.RoomNumber == number {
			out = append(out, b)
		}
	}
	return out
}

// Rooms returns a copy of all rooms in insertion order.
func (s *Store) Rooms() []model.Room {
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Users returns a copy of all users in insertion order.
func (s *Store) Users() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// Bookings returns a copy of all bookings in creation order.
func (s *Store) Bookings() []model.Booking {
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}
