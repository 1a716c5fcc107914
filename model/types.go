// Package model - tier/floor/model value types and sentinel errors.
package model

import (
	"errors"

	"github.com/mkravets/lexopt/core"
)

// Sentinel errors for model construction. The first three are
// booking-scoped: they appear as Exclusion reasons, never as Build failures.
var (
	// ErrImpossibleStay indicates a stay entirely outside the day horizon.
	ErrImpossibleStay = errors.New("model: stay entirely outside horizon")

	// ErrUnknownCategory indicates a requested category with no rooms at all.
	ErrUnknownCategory = errors.New("model: unknown room category")

	// ErrNoInventory indicates no single room of the requested category is
	// open for the booking's entire stay.
	ErrNoInventory = errors.New("model: no room available for full stay")

	// ErrBadTier indicates an unrecognized objective kind.
	ErrBadTier = errors.New("model: unsupported tier objective kind")

	// ErrBadEpsilon indicates a negative floor tolerance.
	ErrBadEpsilon = errors.New("model: negative tolerance")
)

// ObjectiveKind selects what a tier optimizes.
type ObjectiveKind int

const (
	// MaximizeRevenue maximizes Σ accepted price × nights.
	MaximizeRevenue ObjectiveKind = iota

	// MinimizeSlack minimizes Σ_d max(0, expected_shows_d − cap_d).
	MinimizeSlack
)

// IsMaximize reports the optimization direction of the kind.
func (k ObjectiveKind) IsMaximize() bool { return k == MaximizeRevenue }

// String names the kind for reports and error context.
func (k ObjectiveKind) String() string {
	switch k {
	case MaximizeRevenue:
		return "maximize-revenue"
	case MinimizeSlack:
		return "minimize-slack"
	default:
		return "unknown"
	}
}

// TierSpec is one ordered priority level: a name (for failure attribution
// and reports), an objective kind, and the tolerance applied when this
// tier's optimum is later locked as a floor.
type TierSpec struct {
	Name    string
	Kind    ObjectiveKind
	Epsilon float64
}

// Floor is the locked optimal value of an already-solved tier, injected as
// a bound on every subsequent tier of the same episode. Floors are
// append-only: once locked, immutable for the rest of the episode.
type Floor struct {
	// Tier is the name of the tier that produced this floor.
	Tier string

	// Kind identifies the objective expression the bound applies to.
	Kind ObjectiveKind

	// Value is the locked optimal objective value.
	Value float64

	// Epsilon is the numeric tolerance: maximize floors bind as
	// expr ≥ Value−Epsilon, minimize floors as expr ≤ Value+Epsilon.
	Epsilon float64
}

// Exclusion records a booking removed from the acceptance variable set
// during construction, with the sentinel explaining why.
type Exclusion struct {
	BookingID string
	Reason    error
}

// Candidate is one feasible acceptance decision: the booking, its
// in-horizon stay days, and its revenue contribution when accepted.
type Candidate struct {
	Booking core.Booking

	// Days is the booking's in-horizon stay, ascending.
	Days []int

	// Revenue is PricePerNight × len(Days).
	Revenue float64
}

// Model is the built constraint system for one tier solve. It is immutable;
// all evaluation methods are pure functions of an acceptance vector aligned
// with Candidates.
type Model struct {
	Dataset *core.Dataset
	Tier    TierSpec
	Floors  []Floor

	// Candidates is sorted by booking ID for deterministic search order.
	Candidates []Candidate

	// Infeasible lists excluded bookings with reasons, sorted by booking ID.
	Infeasible []Exclusion

	// capByDay[d] is the total room capacity on day d (index 1..Horizon).
	capByDay []int
}

// CapacityOn returns the precomputed total room capacity on day d.
//
// Complexity: O(1).
func (m *Model) CapacityOn(d int) int {
	if d < 1 || d >= len(m.capByDay) {
		return 0
	}

	return m.capByDay[d]
}
