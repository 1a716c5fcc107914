// Package core - booking/room/solution value types.
//
// This file declares the data model only; validation lives in validate.go
// and invariant checkers in checks.go. All types are plain values: no locks,
// no hidden state, no mutation after Validate.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors for dataset validation and invariant checks.
var (
	// ErrNilDataset indicates a nil *Dataset was passed where one is required.
	ErrNilDataset = errors.New("core: dataset is nil")

	// ErrBadHorizon indicates a non-positive day horizon.
	ErrBadHorizon = errors.New("core: horizon must be at least 1 day")

	// ErrEmptyID indicates a booking or room with an empty ID.
	ErrEmptyID = errors.New("core: empty booking or room ID")

	// ErrDuplicateID indicates a booking or room ID that occurs more than once.
	ErrDuplicateID = errors.New("core: duplicate booking or room ID")

	// ErrStartOutOfRange indicates an arrival day before day 1 of the axis.
	ErrStartOutOfRange = errors.New("core: arrival day before start of axis")

	// ErrBadLength indicates a non-positive length of stay.
	ErrBadLength = errors.New("core: length of stay must be at least 1 night")

	// ErrNegativePrice indicates a negative price per night.
	ErrNegativePrice = errors.New("core: price per night is negative")

	// ErrBadShowProb indicates a show probability outside [0,1].
	ErrBadShowProb = errors.New("core: show probability outside [0,1]")

	// ErrRoomDoubleBooked indicates two accepted stays share a (room, day) pair.
	ErrRoomDoubleBooked = errors.New("core: room double-booked on a day")

	// ErrBrokenStay indicates an accepted stay split across rooms or with day gaps.
	ErrBrokenStay = errors.New("core: accepted stay is not continuous in one room")
)

// Booking is a single stay request. Immutable once loaded for a given solve:
// the model builder consumes bookings, it never mutates them.
type Booking struct {
	// ID uniquely identifies the booking within its Dataset.
	ID string

	// Start is the arrival day, 1-based within the Dataset horizon.
	Start int

	// Length is the requested number of nights.
	Length int

	// Category is the requested room category.
	Category string

	// PricePerNight is the revenue contribution of one occupied night.
	PricePerNight float64

	// ShowProb is the probability the guest actually shows up;
	// it drives the overbooking slack tier, not revenue.
	ShowProb float64
}

// StayDays returns the in-horizon day indices of the stay, ascending:
// [Start, Start+Length) clipped to [1..horizon]. The result is empty when
// the requested range lies entirely outside the horizon.
//
// Complexity: O(Length).
func (b Booking) StayDays(horizon int) []int {
	if horizon < 1 || b.Length < 1 {
		return nil
	}
	lo := b.Start
	if lo < 1 {
		lo = 1
	}
	hi := b.Start + b.Length // exclusive
	if hi > horizon+1 {
		hi = horizon + 1
	}
	if lo >= hi {
		return nil
	}
	days := make([]int, 0, hi-lo)
	for d := lo; d < hi; d++ {
		days = append(days, d)
	}

	return days
}

// Room is one physical room with a day-indexed availability calendar.
// A nil or empty Closed set means the room is open on every horizon day.
type Room struct {
	// ID uniquely identifies the room within its Dataset.
	ID string

	// Category is the room's category; bookings request a category, not a room.
	Category string

	// Closed holds the days on which the room cannot host anyone
	// (maintenance, committed occupancy carried in from earlier windows).
	Closed map[int]bool
}

// AvailableOn reports whether the room can host a guest on day d.
//
// Complexity: O(1).
func (r Room) AvailableOn(d, horizon int) bool {
	if d < 1 || d > horizon {
		return false
	}

	return !r.Closed[d]
}

// Dataset is one property's booking/room universe over a day horizon.
// Validate it once; afterwards treat it as read-only.
type Dataset struct {
	// Horizon is the number of days on the axis, days are 1..Horizon.
	Horizon int

	// Bookings are the stay requests under consideration.
	Bookings []Booking

	// Rooms is the room inventory.
	Rooms []Room
}

// RoomsInCategory returns the rooms of the given category in input order.
//
// Complexity: O(|Rooms|).
func (ds *Dataset) RoomsInCategory(category string) []Room {
	var out []Room
	for _, r := range ds.Rooms {
		if r.Category == category {
			out = append(out, r)
		}
	}

	return out
}

// CapacityOn returns the total number of rooms available on day d,
// across all categories. This is the cap_d term of the overbooking slack
// constraint w_d ≥ expected_shows_d − cap_d.
//
// Complexity: O(|Rooms|).
func (ds *Dataset) CapacityOn(d int) int {
	var n int
	for _, r := range ds.Rooms {
		if r.AvailableOn(d, ds.Horizon) {
			n++
		}
	}

	return n
}

// Assignment binds one accepted booking to one room over its stay days.
type Assignment struct {
	// BookingID is the accepted booking.
	BookingID string

	// RoomID is the room hosting the whole stay.
	RoomID string

	// Days are the occupied day indices, ascending.
	Days []int
}

// Solution is the outcome of one solved tier model: which bookings were
// accepted, where they sleep, the realized objective value, and the
// overbooking slack per day.
type Solution struct {
	// Assignments lists one entry per accepted booking, sorted by BookingID.
	Assignments []Assignment

	// Objective is the realized objective value of the solved tier.
	Objective float64

	// Revenue is the total revenue of the accepted set, regardless of
	// which tier's objective was solved.
	Revenue float64

	// SlackByDay maps day index to non-negative overbooking slack.
	SlackByDay map[int]float64
}

// AcceptedIDs returns the accepted booking IDs in ascending order.
//
// Complexity: O(n log n).
func (s *Solution) AcceptedIDs() []string {
	ids := make([]string, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		ids = append(ids, a.BookingID)
	}
	sort.Strings(ids)

	return ids
}

// TotalSlack returns the sum of per-day slack values.
//
// Complexity: O(|SlackByDay|).
func (s *Solution) TotalSlack() float64 {
	var sum float64
	for _, w := range s.SlackByDay {
		sum += w
	}

	return sum
}
