// Command demo runs a scripted booking session against an in-process
// service and prints the resulting ledger report.  Rejected attempts are
// part of the script; the run always continues to the report.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/booking"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/report"
	"github.com/iliyamo/hotel-reservation/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	svc := booking.NewService(store.New(), logger)

	logger.Info("creating rooms")
	svc.SetRoom(1, model.RoomTypeStandard, 1000)
	svc.SetRoom(2, model.RoomTypeJuniorSuite, 2000)
	svc.SetRoom(3, model.RoomTypeMasterSuite, 3000)

	logger.Info("creating users")
	svc.SetUser(1, 5000)
	svc.SetUser(2, 10000)

	// 7 nights in the junior suite cost 14000; user 1 only holds 5000.
	expectFailure(logger, svc, 1, 2, model.Date(2026, 6, 30), model.Date(2026, 7, 7))

	// Reversed dates.
	expectFailure(logger, svc, 1, 2, model.Date(2026, 7, 7), model.Date(2026, 6, 30))

	// One night in the standard room fits user 1's budget.
	expectSuccess(logger, svc, 1, 1, model.Date(2026, 7, 7), model.Date(2026, 7, 8))

	// Room 1 is taken over an overlapping range.
	expectFailure(logger, svc, 2, 1, model.Date(2026, 7, 7), model.Date(2026, 7, 9))

	// The master suite is free, one night for user 2.
	expectSuccess(logger, svc, 2, 3, model.Date(2026, 7, 7), model.Date(2026, 7, 8))

	// Repricing room 1 must not rewrite the booking history above.
	logger.Info("updating room 1")
	svc.SetRoom(1, model.RoomTypeMasterSuite, 10000)

	report.PrintAll(os.Stdout, svc)
	report.PrintAllUsers(os.Stdout, svc)
}

func expectSuccess(logger *slog.Logger, svc *booking.Service, userID, roomNumber uint64, checkIn, checkOut time.Time) {
	if _, err := svc.BookRoom(userID, roomNumber, checkIn, checkOut); err != nil {
		logger.Error("booking unexpectedly rejected", "user_id", userID, "room_number", roomNumber, "error", err)
		os.Exit(1)
	}
}

func expectFailure(logger *slog.Logger, svc *booking.Service, userID, roomNumber uint64, checkIn, checkOut time.Time) {
	if _, err := svc.BookRoom(userID, roomNumber, checkIn, checkOut); err == nil {
		logger.Error("booking unexpectedly accepted", "user_id", userID, "room_number", roomNumber)
		os.Exit(1)
	}
	// the service already logged the rejection with its typed error
}
