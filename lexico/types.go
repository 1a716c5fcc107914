// Package lexico - solver contract, episode report, and error types.
package lexico

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/model"
)

// Sentinel errors for controller construction and execution.
var (
	// ErrNoTiers indicates a controller with an empty tier list.
	ErrNoTiers = errors.New("lexico: no tiers configured")

	// ErrNilSolver indicates a controller without a solver.
	ErrNilSolver = errors.New("lexico: solver is nil")

	// ErrDuplicateTier indicates two tiers sharing a name; floors reference
	// tiers by name, so names must be unique within one controller.
	ErrDuplicateTier = errors.New("lexico: duplicate tier name")

	// ErrBadGap indicates a negative relative optimality gap.
	ErrBadGap = errors.New("lexico: negative optimality gap")
)

// Status is the declared outcome of one tier solve.
type Status int

const (
	// StatusOptimal: a proven global optimum within configured tolerance.
	StatusOptimal Status = iota

	// StatusTimeLimit: the time budget expired; Result may carry the best
	// incumbent found and its proven bound.
	StatusTimeLimit

	// StatusInfeasible: no solution satisfies the constraints and floors.
	StatusInfeasible

	// StatusUnbounded: the objective is unbounded for the model class.
	StatusUnbounded

	// StatusError: the solver failed for a reason other than the model.
	StatusError
)

// String names the status for reports and error messages.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusTimeLimit:
		return "time-limit"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// SolveConfig carries the per-solve resource limits.
type SolveConfig struct {
	// TimeLimit bounds one tier solve; 0 means unlimited. Every tier of a
	// rolling-horizon or multi-property run must set a limit so one
	// intractable instance cannot stall the whole run.
	TimeLimit time.Duration

	// Gap is the relative optimality gap at which a time-limited incumbent
	// is still accepted: |bound − objective| / max(1, |objective|) ≤ Gap.
	Gap float64
}

// Result is one tier solve outcome as reported by a Solver.
type Result struct {
	// Status declares how the solve terminated.
	Status Status

	// Objective is the optimal value (StatusOptimal) or the incumbent value
	// (StatusTimeLimit with a solution); undefined otherwise.
	Objective float64

	// Bound is the proven bound on the true optimum: an upper bound for
	// maximize objectives, a lower bound for minimize objectives. Equal to
	// Objective when Status is StatusOptimal.
	Bound float64

	// Solution is the optimal (or incumbent) solution, nil when none exists.
	Solution *core.Solution
}

// Solver is the external optimization capability: solve a built model under
// the given limits and report the outcome distinctly. Implementations must
// guarantee a global optimum for StatusOptimal and must honor ctx
// cancellation; cancellation is episode-scoped by construction because each
// episode owns its context.
type Solver interface {
	Solve(ctx context.Context, m *model.Model, cfg SolveConfig) (Result, error)
}

// Episode is the report of one complete controller run: the locked floors
// in tier order (append-only), the final tier's solution, and the bookings
// excluded at model construction.
type Episode struct {
	// ID is a unique identifier for this solve episode.
	ID string

	// Floors holds one locked floor per tier, in precedence order.
	Floors []model.Floor

	// Solution is the last solved tier's solution; it honors every floor.
	Solution *core.Solution

	// Excluded lists bookings removed during model construction.
	Excluded []model.Exclusion

	// Revenue and Slack are the final solution's KPI totals.
	Revenue float64
	Slack   float64
}

// InfeasibleTierError reports that a tier could not be solved and the
// episode was aborted. It carries full attribution: which tier, at which
// precedence rank, with which solver status.
type InfeasibleTierError struct {
	// Tier is the failing tier's name.
	Tier string

	// Rank is the tier's zero-based precedence index.
	Rank int

	// Status is the solver outcome that caused the abort.
	Status Status

	// Err is the underlying cause, when one exists.
	Err error
}

// Error formats the failure with tier attribution.
func (e *InfeasibleTierError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lexico: tier %q (rank %d) %s: %v", e.Tier, e.Rank, e.Status, e.Err)
	}

	return fmt.Sprintf("lexico: tier %q (rank %d) %s", e.Tier, e.Rank, e.Status)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *InfeasibleTierError) Unwrap() error { return e.Err }
