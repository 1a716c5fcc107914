// Package model - pure model construction.
package model

import (
	"sort"

	"github.com/mkravets/lexopt/core"
)

// Build constructs the tier model for ds under the given tier and any
// previously locked floors.
//
// Contract:
//   - ds must pass core.Validate; validation failures abort the build.
//   - tier.Kind must be a known ObjectiveKind; tier.Epsilon ≥ 0.
//   - floors must each carry a known Kind and Epsilon ≥ 0.
//   - Bookings that cannot be hosted (stay outside horizon, unknown
//     category, no single room open for the full stay) are excluded and
//     recorded in Model.Infeasible — they never abort the build.
//
// Side effects: none. The returned model aliases ds but never mutates it.
//
// Complexity: O(B·R·L + R·H) where L is the longest stay.
func Build(ds *core.Dataset, tier TierSpec, floors []Floor) (*Model, error) {
	// Stage 1: dataset shape.
	if err := core.Validate(ds); err != nil {
		return nil, err
	}

	// Stage 2: tier and floor sanity.
	if err := validateTier(tier); err != nil {
		return nil, err
	}
	for _, f := range floors {
		if err := validateFloor(f); err != nil {
			return nil, err
		}
	}

	// Stage 3: capacity table cap_d, d ∈ [1..Horizon].
	capByDay := make([]int, ds.Horizon+1)
	for d := 1; d <= ds.Horizon; d++ {
		capByDay[d] = ds.CapacityOn(d)
	}

	// Stage 4: candidate partition. Category presence is checked against the
	// whole inventory first so unknown categories report distinctly from
	// calendars that are merely full.
	categories := make(map[string]bool, len(ds.Rooms))
	for _, r := range ds.Rooms {
		categories[r.Category] = true
	}

	m := &Model{
		Dataset:  ds,
		Tier:     tier,
		Floors:   append([]Floor(nil), floors...),
		capByDay: capByDay,
	}
	for _, b := range ds.Bookings {
		days := b.StayDays(ds.Horizon)
		switch {
		case len(days) == 0:
			m.Infeasible = append(m.Infeasible, Exclusion{BookingID: b.ID, Reason: ErrImpossibleStay})
		case !categories[b.Category]:
			m.Infeasible = append(m.Infeasible, Exclusion{BookingID: b.ID, Reason: ErrUnknownCategory})
		case !hasFullStayRoom(ds, b.Category, days):
			m.Infeasible = append(m.Infeasible, Exclusion{BookingID: b.ID, Reason: ErrNoInventory})
		default:
			m.Candidates = append(m.Candidates, Candidate{
				Booking: b,
				Days:    days,
				Revenue: b.PricePerNight * float64(len(days)),
			})
		}
	}

	// Deterministic ordering regardless of input order.
	sort.Slice(m.Candidates, func(i, j int) bool {
		return m.Candidates[i].Booking.ID < m.Candidates[j].Booking.ID
	})
	sort.Slice(m.Infeasible, func(i, j int) bool {
		return m.Infeasible[i].BookingID < m.Infeasible[j].BookingID
	})

	return m, nil
}

// validateTier checks internal consistency of one tier spec.
//
// Complexity: O(1).
func validateTier(tier TierSpec) error {
	switch tier.Kind {
	case MaximizeRevenue, MinimizeSlack:
		// ok
	default:
		return ErrBadTier
	}
	if tier.Epsilon < 0 {
		return ErrBadEpsilon
	}

	return nil
}

// validateFloor checks internal consistency of one locked floor.
//
// Complexity: O(1).
func validateFloor(f Floor) error {
	switch f.Kind {
	case MaximizeRevenue, MinimizeSlack:
		// ok
	default:
		return ErrBadTier
	}
	if f.Epsilon < 0 {
		return ErrBadEpsilon
	}

	return nil
}

// hasFullStayRoom reports whether at least one room of the category is open
// on every stay day. Continuity demands a single room per stay, so partial
// coverage by several rooms does not count.
//
// Complexity: O(R·L).
func hasFullStayRoom(ds *core.Dataset, category string, days []int) bool {
	for _, r := range ds.Rooms {
		if r.Category != category {
			continue
		}
		open := true
		for _, d := range days {
			if !r.AvailableOn(d, ds.Horizon) {
				open = false
				break
			}
		}
		if open {
			return true
		}
	}

	return false
}
