package booking

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

// Service validates and executes booking requests and performs the
// administrative upserts.  It is the single concurrency boundary of the
// system: every operation holds the service lock for its whole
// validate-then-commit span, so no partial mutation and no double-booking is
// observable even under concurrent HTTP callers.  Listings take the read
// lock and return detached copies.
type Service struct {
	mu     sync.RWMutex
	store  *store.Store
	logger *slog.Logger
}

// NewService constructs a Service around the given store.  A nil logger
// falls back to slog.Default().
func NewService(st *store.Store, logger *slog.Logger) *Service {
	if st == nil {
		panic("nil store passed to NewService")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: st, logger: logger}
}

// SetRoom creates the room when the number is unknown, otherwise updates its
// type and price in place.  Updates never touch existing bookings: those
// hold snapshots taken at booking time.  The operation has no failure modes;
// a negative price is accepted but logged as a known gap.
func (s *Service) SetRoom(number uint64, roomType model.RoomType, pricePerNight int64) model.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.store.FindRoom(number); ok {
		s.logger.Info("updating room",
			"room_number", number,
			"room_type_old", prev.Type, "room_type", roomType,
			"price_per_night_old", prev.PricePerNight, "price_per_night", pricePerNight)
	} else {
		s.logger.Info("creating room",
			"room_number", number, "room_type", roomType, "price_per_night", pricePerNight)
	}
	if pricePerNight < 0 {
		s.logger.Warn("negative price per night accepted", "room_number", number, "price_per_night", pricePerNight)
	}

	room, _ := s.store.UpsertRoom(number, roomType, pricePerNight)
	return room
}

// SetUser creates the user when the id is unknown, otherwise replaces the
// balance.  The operation has no failure modes; a negative balance is
// accepted but logged as a known gap.
func (s *Service) SetUser(id uint64, balance int64) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.store.FindUser(id); ok {
		s.logger.Info("updating user", "user_id", id, "balance_old", prev.Balance, "balance", balance)
	} else {
		s.logger.Info("creating user", "user_id", id, "balance", balance)
	}
	if balance < 0 {
		s.logger.Warn("negative balance accepted", "user_id", id, "balance", balance)
	}

	user, _ := s.store.UpsertUser(id, balance)
	return user
}

// BookRoom runs the validation pipeline strictly in order and, only when
// every check passes, commits as one unit: it captures room and user
// snapshots, deducts the total cost from the live balance and appends the
// new booking.  The first failing check aborts with a typed error and no
// mutation.  Dates are normalized to calendar days before any check.
func (s *Service) BookRoom(userID, roomNumber uint64, checkIn, checkOut time.Time) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checkIn = model.ToDate(checkIn)
	checkOut = model.ToDate(checkOut)

	if !checkIn.Before(checkOut) {
		return model.Booking{}, s.reject(userID, roomNumber, &InvalidDateRangeError{CheckIn: checkIn, CheckOut: checkOut})
	}

	user, ok := s.store.FindUser(userID)
	if !ok {
		return model.Booking{}, s.reject(userID, roomNumber, &UserNotFoundError{UserID: userID})
	}

	room, ok := s.store.FindRoom(roomNumber)
	if !ok {
		return model.Booking{}, s.reject(userID, roomNumber, &RoomNotFoundError{RoomNumber: roomNumber})
	}

	// The price in effect when the booking is made, not some earlier value.
	nights := model.NightsBetween(checkIn, checkOut)
	totalCost := nights * room.PricePerNight
	if room.PricePerNight != 0 && totalCost/room.PricePerNight != nights {
		// A cost that does not fit in int64 can never be covered.
		return model.Booking{}, s.reject(userID, roomNumber, &InsufficientBalanceError{
			UserID:    userID,
			Required:  math.MaxInt64,
			Available: user.Balance,
		})
	}

	if user.Balance < totalCost {
		return model.Booking{}, s.reject(userID, roomNumber, &InsufficientBalanceError{
			UserID:    userID,
			Required:  totalCost,
			Available: user.Balance,
		})
	}

	for _, existing := range s.store.BookingsForRoom(roomNumber) {
		if existing.Overlaps(checkIn, checkOut) {
			return model.Booking{}, s.reject(userID, roomNumber, &RoomNotAvailableError{
				RoomNumber: roomNumber,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
			})
		}
	}

	// Commit: all checks passed, nothing below may fail.
	b := model.Booking{
		BookingID: s.store.NextBookingID(),
		Room:      room.Snapshot(),
		User:      user.Snapshot(),
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		TotalCost: totalCost,
	}
	s.store.SetUserBalance(userID, user.Balance-totalCost)
	s.store.AppendBooking(b)

	s.logger.Info("booking created",
		"booking_id", b.BookingID,
		"user_id", userID,
		"room_number", roomNumber,
		"check_in", model.FormatDate(checkIn),
		"check_out", model.FormatDate(checkOut),
		"nights", nights,
		"total_cost", totalCost,
		"balance_before", user.Balance,
		"balance_after", user.Balance-totalCost)

	return b, nil
}

func (s *Service) reject(userID, roomNumber uint64, err error) error {
	s.logger.Warn("booking rejected", "user_id", userID, "room_number", roomNumber, "error", err)
	return err
}

// ListRoomsNewestFirst returns the rooms in reverse insertion order.
func (s *Service) ListRoomsNewestFirst() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := s.store.Rooms()
	reverse(rooms)
	return rooms
}

// ListUsersNewestFirst returns the users in reverse insertion order.
func (s *Service) ListUsersNewestFirst() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := s.store.Users()
	reverse(users)
	return users
}

// ListBookingsNewestFirst returns the bookings in reverse creation order.
// Bookings expose snapshot fields only; live room and user state is never
// joined in.
func (s *Service) ListBookingsNewestFirst() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := s.store.Bookings()
	reverse(bookings)
	return bookings
}

func reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
