package model

import "fmt"

// RoomType enumerates the category tiers a room can belong to.  Two rooms
// can share a type while charging different prices; the type is purely a
// classification label.
type RoomType string

const (
	RoomTypeStandard    RoomType = "STANDARD"
	RoomTypeJuniorSuite RoomType = "JUNIOR_SUITE"
	RoomTypeMasterSuite RoomType = "MASTER_SUITE"
)

// ParseRoomType converts a raw string into a RoomType.  Only the exact
// upper-case names are accepted; anything else is a boundary error and must
// never reach the booking core.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomTypeStandard, RoomTypeJuniorSuite, RoomTypeMasterSuite:
		return RoomType(s), nil
	}
	return "", fmt.Errorf("unknown room type %q", s)
}

// Room is the live, mutable state of a hotel room.  Type and price may be
// updated in place at any time through the administrative upsert; existing
// bookings are insulated from such updates because they hold a RoomSnapshot,
// never a reference to the Room itself.
//
// Fields:
//  Number        – room number, the unique identity of the room.
//  Type          – current category tier.
//  PricePerNight – current price in the smallest currency unit.
type Room struct {
	Number        uint64
	Type          RoomType
	PricePerNight int64
}

// Snapshot freezes the room's current state into an immutable value.
// Called at booking time so that later mutations of the live room are never
// observable through the booking.
func (r Room) Snapshot() RoomSnapshot {
	return RoomSnapshot{
		RoomNumber:    r.Number,
		RoomType:      r.Type,
		PricePerNight: r.PricePerNight,
	}
}

// RoomSnapshot is an immutable copy of a room's fields taken at booking
// time.  It has no identity of its own beyond the booking that owns it and
// is never looked up independently.
type RoomSnapshot struct {
	RoomNumber    uint64
	RoomType      RoomType
	PricePerNight int64
}
