// Package lexico - the floor propagation controller.
package lexico

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/model"
)

// Controller executes an ordered tier list over one dataset per Run call.
// It is stateless across runs: floors live and die with a single episode,
// so one controller may serve many windows or properties sequentially.
type Controller struct {
	tiers  []model.TierSpec
	solver Solver
	cfg    SolveConfig
}

// NewController validates the tier list and solver wiring.
//
// Contract:
//   - At least one tier; tier names unique (floors reference tiers by name).
//   - solver non-nil; cfg.Gap ≥ 0.
//
// Complexity: O(n) over tiers.
func NewController(tiers []model.TierSpec, solver Solver, cfg SolveConfig) (*Controller, error) {
	if len(tiers) == 0 {
		return nil, ErrNoTiers
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if cfg.Gap < 0 {
		return nil, ErrBadGap
	}
	seen := make(map[string]struct{}, len(tiers))
	for _, tier := range tiers {
		if _, dup := seen[tier.Name]; dup {
			return nil, fmt.Errorf("tier %q: %w", tier.Name, ErrDuplicateTier)
		}
		seen[tier.Name] = struct{}{}
	}

	return &Controller{
		tiers:  append([]model.TierSpec(nil), tiers...),
		solver: solver,
		cfg:    cfg,
	}, nil
}

// Tiers returns the configured tier specs in precedence order.
func (c *Controller) Tiers() []model.TierSpec {
	return append([]model.TierSpec(nil), c.tiers...)
}

// Run executes every tier in strict precedence order over ds and returns
// the episode report.
//
// For tier k the model is built with floors locked by tiers 1..k−1; on a
// proven optimum (or a time-limited incumbent within the configured gap)
// the objective value is locked as floor k with the tier's tolerance. Any
// other outcome aborts the episode with *InfeasibleTierError attributing
// the failing tier — earlier floors are never relaxed.
//
// The returned episode's floors are monotonically non-degrading within the
// episode by construction: each later solution is constrained to honor
// every earlier floor within its epsilon.
//
// Complexity: n sequential tier solves; tier solves must not run
// concurrently because tier k+1 depends on tier k's locked floor.
func (c *Controller) Run(ctx context.Context, ds *core.Dataset) (*Episode, error) {
	if ds == nil {
		return nil, core.ErrNilDataset
	}

	var (
		floors   = make([]model.Floor, 0, len(c.tiers))
		lastSol  *core.Solution
		excluded []model.Exclusion
	)
	for rank, tier := range c.tiers {
		m, err := model.Build(ds, tier, floors)
		if err != nil {
			// Construction fails only on malformed datasets or specs, not on
			// individual bookings; attribute it to the tier being prepared.
			return nil, &InfeasibleTierError{Tier: tier.Name, Rank: rank, Status: StatusError, Err: err}
		}

		res, err := c.solver.Solve(ctx, m, c.cfg)
		if err != nil {
			return nil, &InfeasibleTierError{Tier: tier.Name, Rank: rank, Status: StatusError, Err: err}
		}

		value, locked := lockableValue(res, c.cfg.Gap)
		if !locked {
			return nil, &InfeasibleTierError{Tier: tier.Name, Rank: rank, Status: res.Status}
		}

		floors = append(floors, model.Floor{
			Tier:    tier.Name,
			Kind:    tier.Kind,
			Value:   value,
			Epsilon: tier.Epsilon,
		})
		lastSol = res.Solution
		excluded = m.Infeasible
	}

	return &Episode{
		ID:       uuid.NewString(),
		Floors:   floors,
		Solution: lastSol,
		Excluded: excluded,
		Revenue:  lastSol.Revenue,
		Slack:    lastSol.TotalSlack(),
	}, nil
}

// lockableValue decides whether a solve outcome may lock a floor and with
// which value. Optimal outcomes lock their objective; time-limited
// incumbents lock only when proven within the relative gap. Everything
// else — infeasible, unbounded, error, or a timeout with no incumbent —
// is not lockable. The objective direction is already folded into Bound's
// meaning, so the gap test is direction-agnostic.
//
// Complexity: O(1).
func lockableValue(res Result, gap float64) (float64, bool) {
	switch res.Status {
	case StatusOptimal:
		return res.Objective, res.Solution != nil
	case StatusTimeLimit:
		if res.Solution == nil {
			return 0, false
		}
		if relativeGap(res.Objective, res.Bound) <= gap {
			return res.Objective, true
		}

		return 0, false
	default:
		return 0, false
	}
}

// relativeGap returns |bound − objective| / max(1, |objective|).
//
// Complexity: O(1).
func relativeGap(objective, bound float64) float64 {
	denom := math.Abs(objective)
	if denom < 1 {
		denom = 1
	}

	return math.Abs(bound-objective) / denom
}
