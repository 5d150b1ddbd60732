package model

import (
	"fmt"
	"time"
)

// Calendar dates carry no time of day and no timezone significance.  They
// are represented as time.Time values pinned to 00:00:00 UTC; every boundary
// that accepts external input normalizes through this file before the
// booking core sees a date.

const day = 24 * time.Hour

// Date builds a calendar date from its components.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ToDate strips the time of day and timezone from t, keeping the calendar
// day it denotes.
func ToDate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "2006-01-02" string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return ToDate(t), nil
}

// FormatDate renders a calendar date as "2006-01-02".
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// NightsBetween returns the whole days between two calendar dates.  Both
// arguments must already be normalized; UTC midnights make the division
// exact.
func NightsBetween(checkIn, checkOut time.Time) int64 {
	return int64(checkOut.Sub(checkIn) / day)
}
