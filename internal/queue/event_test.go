package queue

import (
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func sampleBooking() model.Booking {
	return model.Booking{
		BookingID: 7,
		Room: model.RoomSnapshot{
			RoomNumber:    3,
			RoomType:      model.RoomTypeMasterSuite,
			PricePerNight: 3000,
		},
		User: model.UserSnapshot{
			UserID:           2,
			BalanceAtBooking: 10000,
		},
		CheckIn:   model.Date(2026, 7, 7),
		CheckOut:  model.Date(2026, 7, 9),
		TotalCost: 6000,
	}
}

func TestNewBookingCreatedEvent(t *testing.T) {
	ev := NewBookingCreatedEvent(sampleBooking())

	if ev.EventID == "" {
		t.Error("EventID is empty")
	}
	if ev.BookingID != 7 || ev.RoomNumber != 3 || ev.UserID != 2 {
		t.Errorf("ids = %d/%d/%d", ev.BookingID, ev.RoomNumber, ev.UserID)
	}
	if ev.RoomType != "MASTER_SUITE" || ev.PricePerNight != 3000 {
		t.Errorf("room = %s/%d", ev.RoomType, ev.PricePerNight)
	}
	if ev.BalanceAtBooking != 10000 {
		t.Errorf("BalanceAtBooking = %d", ev.BalanceAtBooking)
	}
	if ev.CheckIn != "2026-07-07" || ev.CheckOut != "2026-07-09" {
		t.Errorf("dates = %s..%s", ev.CheckIn, ev.CheckOut)
	}
	if ev.Nights != 2 || ev.TotalCost != 6000 {
		t.Errorf("nights/total = %d/%d", ev.Nights, ev.TotalCost)
	}
	if _, err := time.Parse(time.RFC3339, ev.CreatedAt); err != nil {
		t.Errorf("CreatedAt %q is not RFC3339: %v", ev.CreatedAt, err)
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewBookingCreatedEvent(sampleBooking())
	b := NewBookingCreatedEvent(sampleBooking())
	if a.EventID == b.EventID {
		t.Errorf("two events share id %q", a.EventID)
	}
}

func TestFormatBookingLine(t *testing.T) {
	ev := NewBookingCreatedEvent(sampleBooking())
	ev.CreatedAt = "2026-07-01T12:00:00Z"

	line := formatBookingLine(ev)
	want := "[2026-07-01T12:00:00Z] Booking created | booking_id=7 | user_id=2 | room=#3 (MASTER_SUITE, 3000/night) | check_in=2026-07-07 | check_out=2026-07-09 | nights=2 | total=6000\n"
	if line != want {
		t.Errorf("line = %q\nwant  %q", line, want)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("line missing trailing newline")
	}
}
