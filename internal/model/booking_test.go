package model

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	// Existing stay occupies the nights of Jan 5 through Jan 9 (half-open
	// [5, 10)).
	existing := Booking{
		CheckIn:  Date(2026, time.January, 5),
		CheckOut: Date(2026, time.January, 10),
	}

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"partial overlap from the right", Date(2026, time.January, 7), Date(2026, time.January, 12), true},
		{"partial overlap from the left", Date(2026, time.January, 1), Date(2026, time.January, 7), true},
		{"identical interval", Date(2026, time.January, 5), Date(2026, time.January, 10), true},
		{"new contains existing", Date(2026, time.January, 1), Date(2026, time.January, 15), true},
		{"new contained by existing", Date(2026, time.January, 6), Date(2026, time.January, 9), true},
		{"back-to-back after", Date(2026, time.January, 10), Date(2026, time.January, 15), false},
		{"back-to-back before", Date(2026, time.January, 1), Date(2026, time.January, 5), false},
		{"disjoint after", Date(2026, time.January, 20), Date(2026, time.January, 25), false},
		{"disjoint before", Date(2026, time.January, 1), Date(2026, time.January, 3), false},
		{"single shared night", Date(2026, time.January, 9), Date(2026, time.January, 11), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := existing.Overlaps(tc.checkIn, tc.checkOut); got != tc.want {
				t.Errorf("Overlaps(%s, %s) = %v, want %v",
					FormatDate(tc.checkIn), FormatDate(tc.checkOut), got, tc.want)
			}
		})
	}
}

func TestNights(t *testing.T) {
	b := Booking{
		CheckIn:  Date(2026, time.July, 7),
		CheckOut: Date(2026, time.July, 8),
	}
	if got := b.Nights(); got != 1 {
		t.Errorf("Nights() = %d, want 1", got)
	}

	b.CheckOut = Date(2026, time.July, 14)
	if got := b.Nights(); got != 7 {
		t.Errorf("Nights() = %d, want 7", got)
	}
}

func TestNightsBetweenAcrossMonths(t *testing.T) {
	// June 30 to July 7 spans a month boundary, seven nights.
	if got := NightsBetween(Date(2026, time.June, 30), Date(2026, time.July, 7)); got != 7 {
		t.Errorf("NightsBetween = %d, want 7", got)
	}
}

func TestToDateStripsClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2026, time.July, 7, 23, 45, 12, 999, loc)
	got := ToDate(in)
	want := Date(2026, time.July, 7)
	if !got.Equal(want) {
		t.Errorf("ToDate(%v) = %v, want %v", in, got, want)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-07-07")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !got.Equal(Date(2026, time.July, 7)) {
		t.Errorf("ParseDate = %v, want 2026-07-07", got)
	}
	if _, err := ParseDate("07/07/2026"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("ParseDate accepted an empty string")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(Date(2026, time.June, 30)); got != "2026-06-30" {
		t.Errorf("FormatDate = %q, want %q", got, "2026-06-30")
	}
}

func TestParseRoomType(t *testing.T) {
	for _, valid := range []string{"STANDARD", "JUNIOR_SUITE", "MASTER_SUITE"} {
		rt, err := ParseRoomType(valid)
		if err != nil {
			t.Errorf("ParseRoomType(%q): %v", valid, err)
		}
		if string(rt) != valid {
			t.Errorf("ParseRoomType(%q) = %q", valid, rt)
		}
	}
	for _, invalid := range []string{"standard", "SUITE", "", "Junior_Suite"} {
		if _, err := ParseRoomType(invalid); err == nil {
			t.Errorf("ParseRoomType(%q) succeeded, want error", invalid)
		}
	}
}

func TestSnapshotsAreDetachedCopies(t *testing.T) {
	room := Room{Number: 1, Type: RoomTypeStandard, PricePerNight: 1000}
	user := User{ID: 1, Balance: 5000}

	rs := room.Snapshot()
	us := user.Snapshot()

	room.Type = RoomTypeMasterSuite
	room.PricePerNight = 10000
	user.Balance = 0

	if rs.RoomType != RoomTypeStandard || rs.PricePerNight != 1000 {
		t.Errorf("room snapshot changed after room mutation: %+v", rs)
	}
	if us.BalanceAtBooking != 5000 {
		t.Errorf("user snapshot changed after user mutation: %+v", us)
	}
}
