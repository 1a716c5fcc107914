// Package core - staged dataset validation.
//
// Validate mirrors the shape contract of external tabular input: per-field
// range checks and ID uniqueness. Deeper schema semantics (category naming
// conventions, calendar provenance) remain an external collaborator's
// responsibility.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors wrapped
//     with the offending record's context.
//   - O(B + R·H) worst case; no hidden allocations beyond the ID sets.
package core

import "fmt"

// Validate verifies a dataset's structural contract.
//
// Contract:
//   - ds non-nil, Horizon ≥ 1.
//   - Booking and room IDs non-empty and unique within their kind.
//   - Arrival day ≥ 1, Length ≥ 1, price ≥ 0, show probability within
//     [0,1]. Arrivals past the horizon are structurally valid — rolling
//     drivers carry future bookings — and are excluded at build time.
//   - Closed-day indices outside the horizon are tolerated (harmless).
//
// Errors wrap the sentinel with the record's ID so callers can attribute
// failures without parsing messages.
//
// Complexity: O(B + R) time, O(B + R) extra space.
func Validate(ds *Dataset) error {
	// Stage 1: shape.
	if ds == nil {
		return ErrNilDataset
	}
	if ds.Horizon < 1 {
		return ErrBadHorizon
	}

	// Stage 2: bookings.
	if err := validateBookings(ds.Bookings); err != nil {
		return err
	}

	// Stage 3: rooms.
	return validateRooms(ds.Rooms)
}

// validateBookings enforces per-booking field ranges and ID uniqueness.
//
// Complexity: O(B) time, O(B) extra space.
func validateBookings(bookings []Booking) error {
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if b.ID == "" {
			return fmt.Errorf("booking %q: %w", b.ID, ErrEmptyID)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("booking %q: %w", b.ID, ErrDuplicateID)
		}
		seen[b.ID] = struct{}{}

		if b.Start < 1 {
			return fmt.Errorf("booking %q: %w", b.ID, ErrStartOutOfRange)
		}
		if b.Length < 1 {
			return fmt.Errorf("booking %q: %w", b.ID, ErrBadLength)
		}
		if b.PricePerNight < 0 {
			return fmt.Errorf("booking %q: %w", b.ID, ErrNegativePrice)
		}
		if b.ShowProb < 0 || b.ShowProb > 1 {
			return fmt.Errorf("booking %q: %w", b.ID, ErrBadShowProb)
		}
	}

	return nil
}

// validateRooms enforces room ID uniqueness and non-empty IDs.
//
// Complexity: O(R) time, O(R) extra space.
func validateRooms(rooms []Room) error {
	seen := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		if r.ID == "" {
			return fmt.Errorf("room %q: %w", r.ID, ErrEmptyID)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("room %q: %w", r.ID, ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}
	}

	return nil
}
