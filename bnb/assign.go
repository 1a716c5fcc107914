// Package bnb - exact room assignment for an accepted booking set.
//
// Rooms are interchangeable only within a category and only where their
// calendars agree, so assignment is solved per category by backtracking:
// stays ordered by arrival day, rooms tried in ID order. With homogeneous
// calendars the first free room always fits and no backtracking occurs;
// heterogeneous calendars fall back to the exact search.
package bnb

import (
	"sort"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/model"
)

// assignAccepted attempts to host every currently accepted candidate in a
// single room of its category over its whole stay. Returns the assignments
// (ascending booking ID) and whether hosting is possible.
//
// Exclusivity holds because a (room, day) slot is marked occupied exactly
// once; continuity holds because a stay is never split across rooms.
//
// Complexity: exponential worst case in stays per category; linear when
// room calendars within a category are identical.
func (e *engine) assignAccepted() ([]core.Assignment, bool) {
	// Group accepted candidates by category, preserving candidate order.
	byCategory := make(map[string][]model.Candidate)
	var categories []string
	for i, c := range e.m.Candidates {
		if !e.accept[i] {
			continue
		}
		cat := c.Booking.Category
		if _, seen := byCategory[cat]; !seen {
			categories = append(categories, cat)
		}
		byCategory[cat] = append(byCategory[cat], c)
	}
	sort.Strings(categories)

	var out []core.Assignment
	for _, cat := range categories {
		assigned, ok := e.assignCategory(cat, byCategory[cat])
		if !ok {
			return nil, false
		}
		out = append(out, assigned...)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].BookingID < out[j].BookingID })

	return out, true
}

// assignCategory hosts one category's stays in that category's rooms.
//
// Stays are ordered by arrival day (ID tiebreak) — the classic interval
// scheduling order — and rooms are tried in ID order, so the search is
// fully deterministic.
func (e *engine) assignCategory(category string, stays []model.Candidate) ([]core.Assignment, bool) {
	rooms := e.m.Dataset.RoomsInCategory(category)
	if len(rooms) == 0 {
		return nil, false
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })

	ordered := append([]model.Candidate(nil), stays...)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Booking.Start != ordered[j].Booking.Start {
			return ordered[i].Booking.Start < ordered[j].Booking.Start
		}
		return ordered[i].Booking.ID < ordered[j].Booking.ID
	})

	// occupied[r][d] marks room r taken on day d by an earlier stay.
	occupied := make([][]bool, len(rooms))
	for r := range occupied {
		occupied[r] = make([]bool, e.horizon+1)
	}

	roomOf := make([]int, len(ordered))
	if !e.placeStay(ordered, rooms, occupied, roomOf, 0) {
		return nil, false
	}

	out := make([]core.Assignment, 0, len(ordered))
	for i, c := range ordered {
		out = append(out, core.Assignment{
			BookingID: c.Booking.ID,
			RoomID:    rooms[roomOf[i]].ID,
			Days:      c.Days,
		})
	}

	return out, true
}

// placeStay recursively hosts stays[idx:] given the occupancy so far.
func (e *engine) placeStay(stays []model.Candidate, rooms []core.Room, occupied [][]bool, roomOf []int, idx int) bool {
	if idx == len(stays) {
		return true
	}
	c := stays[idx]
	for r := range rooms {
		if !e.roomFits(rooms[r], occupied[r], c.Days) {
			continue
		}
		for _, d := range c.Days {
			occupied[r][d] = true
		}
		roomOf[idx] = r
		if e.placeStay(stays, rooms, occupied, roomOf, idx+1) {
			return true
		}
		for _, d := range c.Days {
			occupied[r][d] = false
		}
	}

	return false
}

// roomFits reports whether the room is open and free on every stay day.
//
// Complexity: O(L).
func (e *engine) roomFits(room core.Room, taken []bool, days []int) bool {
	for _, d := range days {
		if taken[d] || !room.AvailableOn(d, e.horizon) {
			return false
		}
	}

	return true
}
