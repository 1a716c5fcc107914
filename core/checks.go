// Package core - hard-invariant checkers shared by drivers and tests.
//
// These functions re-verify, on a finished solution (or a merged plan of
// assignments from several rolling windows), the two invariants the solver
// enforces structurally: room exclusivity per day and stay continuity.
// They exist so callers never have to trust a solver implementation.
package core

import "fmt"

// CheckExclusivity verifies that no (room, day) pair is occupied by more
// than one assignment. The assignments may come from a single solution or
// from a union of committed plans across windows.
//
// Complexity: O(Σ stay lengths) time and space.
func CheckExclusivity(assignments []Assignment) error {
	type slot struct {
		room string
		day  int
	}
	occupied := make(map[slot]string, len(assignments))
	for _, a := range assignments {
		for _, d := range a.Days {
			s := slot{room: a.RoomID, day: d}
			if prev, taken := occupied[s]; taken {
				return fmt.Errorf("room %q day %d held by %q and %q: %w",
					a.RoomID, d, prev, a.BookingID, ErrRoomDoubleBooked)
			}
			occupied[s] = a.BookingID
		}
	}

	return nil
}

// CheckContinuity verifies that every assignment occupies exactly the
// booking's in-horizon stay days, in one room, with no gaps.
//
// Contract: ds must contain every assigned booking; unknown booking IDs
// fail with ErrBrokenStay context.
//
// Complexity: O(B + Σ stay lengths).
func CheckContinuity(ds *Dataset, assignments []Assignment) error {
	if ds == nil {
		return ErrNilDataset
	}
	byID := make(map[string]Booking, len(ds.Bookings))
	for _, b := range ds.Bookings {
		byID[b.ID] = b
	}

	for _, a := range assignments {
		b, known := byID[a.BookingID]
		if !known {
			return fmt.Errorf("booking %q not in dataset: %w", a.BookingID, ErrBrokenStay)
		}
		want := b.StayDays(ds.Horizon)
		if len(want) != len(a.Days) {
			return fmt.Errorf("booking %q: %d assigned days, stay has %d: %w",
				a.BookingID, len(a.Days), len(want), ErrBrokenStay)
		}
		for i, d := range want {
			if a.Days[i] != d {
				return fmt.Errorf("booking %q: day %d assigned, stay expects %d: %w",
					a.BookingID, a.Days[i], d, ErrBrokenStay)
			}
		}
		// One room for the whole stay is structural: Assignment carries a
		// single RoomID, so only day coverage can break continuity.
	}

	return nil
}
