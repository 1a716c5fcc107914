// Package bnb - the depth-first search engine.
package bnb

import (
	"context"
	"time"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
	"github.com/mkravets/lexopt/model"
)

// compile-time check: Solver satisfies the controller's solver contract.
var _ lexico.Solver = (*Solver)(nil)

// engine holds all search data for one Solve call. One engine per call,
// never shared: the Solver stays stateless and the recursion mutates only
// fields it owns, so incremental updates can be undone on backtrack.
type engine struct {
	m        *model.Model
	n        int
	horizon  int
	maximize bool

	// Time budget and cancellation.
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	aborted     bool
	canceled    bool

	// Current search state, updated incrementally.
	accept   []bool
	revenue  float64
	expected []float64 // expected[d] = Σ accepted show probabilities on day d
	slack    float64   // Σ_d max(0, expected[d] − cap_d)

	// Precomputes.
	sufRevenue []float64 // sufRevenue[i] = Σ Candidates[i:].Revenue

	// Incumbent.
	found       bool
	bestObj     float64
	bestRevenue float64
	bestAssign  []core.Assignment
	bestSlack   map[int]float64

	// Optimistic bounds of subtrees left unexplored on abort; used to
	// report an honest Bound alongside a time-limited incumbent.
	openSet   bool
	openBound float64
}

// Solve runs the exact search over m under cfg's limits.
//
// Contract:
//   - m must come from model.Build (candidates ID-sorted, capacities cached).
//   - cfg.TimeLimit 0 means unlimited; ctx cancellation aborts with ctx's
//     error regardless of the time limit.
//
// Outcomes:
//   - StatusOptimal with the proven optimum and Bound == Objective.
//   - StatusTimeLimit with the best incumbent (possibly none) and the
//     tightest proven bound over the unexplored frontier.
//   - StatusInfeasible when no acceptance vector satisfies the floors.
//
// Determinism: candidate order and branching policy are fixed, so the
// locked objective value is reproducible; the selected optimal assignment
// among ties is an implementation detail callers must not rely on.
func (s *Solver) Solve(ctx context.Context, m *model.Model, cfg lexico.SolveConfig) (lexico.Result, error) {
	if m == nil {
		return lexico.Result{Status: lexico.StatusError}, ErrNilModel
	}

	e := &engine{
		m:        m,
		n:        len(m.Candidates),
		horizon:  m.Dataset.Horizon,
		maximize: m.Tier.Kind.IsMaximize(),
		ctx:      ctx,
		accept:   make([]bool, len(m.Candidates)),
		expected: make([]float64, m.Dataset.Horizon+1),
	}
	if cfg.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}
	e.precomputeSuffixRevenue()

	e.dfs(0)

	if e.canceled {
		return lexico.Result{Status: lexico.StatusError}, ctx.Err()
	}

	return e.result(), nil
}

// precomputeSuffixRevenue fills sufRevenue[i] = Σ_{j≥i} revenue_j, the
// optimistic revenue still reachable from depth i.
//
// Complexity: O(n).
func (e *engine) precomputeSuffixRevenue() {
	e.sufRevenue = make([]float64, e.n+1)
	for i := e.n - 1; i >= 0; i-- {
		e.sufRevenue[i] = e.sufRevenue[i+1] + e.m.Candidates[i].Revenue
	}
}

// interrupted checks ctx and the soft deadline. Called on node entry; the
// per-node cost is one clock read, negligible against the assignment check.
func (e *engine) interrupted() bool {
	select {
	case <-e.ctx.Done():
		e.canceled = true
		return true
	default:
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return true
	}

	return false
}

// dfs explores the decision for candidate i with everything before i fixed.
func (e *engine) dfs(i int) {
	if e.aborted {
		e.recordOpen(e.nodeBound(i))
		return
	}
	if e.interrupted() {
		e.aborted = true
		e.recordOpen(e.nodeBound(i))
		return
	}

	// Floor-feasibility pruning: no completion of this node can reach a
	// locked revenue floor, or the monotone slack already exceeds a locked
	// ceiling. Such subtrees contain no feasible leaf at all, so they
	// contribute nothing to the open bound.
	if !e.floorsReachable(i) {
		return
	}

	// Incumbent pruning on the tier objective.
	if e.found {
		if e.maximize {
			if e.revenue+e.sufRevenue[i] <= e.bestObj {
				return
			}
		} else if e.slack >= e.bestObj {
			return
		}
	}

	if i == e.n {
		e.leaf()
		return
	}

	// Objective-aware deterministic branching.
	if e.maximize {
		e.branchAccept(i)
		e.dfs(i + 1) // reject branch
	} else {
		e.dfs(i + 1) // reject branch
		e.branchAccept(i)
	}
}

// branchAccept tries the accept decision for candidate i: updates the
// incremental state, prunes immediately when the accepted set admits no
// room assignment, recurses, and restores state.
//
// Complexity: O(L) state update + one assignment check.
func (e *engine) branchAccept(i int) {
	c := e.m.Candidates[i]
	e.accept[i] = true
	e.revenue += c.Revenue
	e.applyShows(c, +1)

	// Exclusivity/continuity gate: monotone, so checking on every accept
	// prunes infeasible sets at the earliest possible depth.
	if _, ok := e.assignAccepted(); ok {
		e.dfs(i + 1)
	}

	e.applyShows(c, -1)
	e.revenue -= c.Revenue
	e.accept[i] = false
}

// applyShows adds (sign=+1) or removes (sign=-1) candidate c's expected
// shows and keeps the running slack total consistent.
//
// Complexity: O(L).
func (e *engine) applyShows(c model.Candidate, sign float64) {
	p := c.Booking.ShowProb * sign
	for _, d := range c.Days {
		capacity := float64(e.m.CapacityOn(d))
		before := e.expected[d] - capacity
		if before < 0 {
			before = 0
		}
		e.expected[d] += p
		after := e.expected[d] - capacity
		if after < 0 {
			after = 0
		}
		e.slack += after - before
	}
}

// floorsReachable reports whether some completion of the current node can
// still satisfy every locked floor: optimistic revenue against maximize
// floors, monotone slack against minimize ceilings.
//
// Complexity: O(F).
func (e *engine) floorsReachable(i int) bool {
	for _, f := range e.m.Floors {
		if f.Kind.IsMaximize() {
			if e.revenue+e.sufRevenue[i] < f.Value-f.Epsilon {
				return false
			}
		} else if e.slack > f.Value+f.Epsilon {
			return false
		}
	}

	return true
}

// leaf evaluates a fully decided acceptance vector: exact floor check,
// assignment materialization, incumbent update.
func (e *engine) leaf() {
	if !e.floorsHold() {
		return
	}
	assignments, ok := e.assignAccepted()
	if !ok {
		// Unreachable in practice: accept branches are gated by the same
		// check. Kept as a guard for the all-reject leaf path.
		return
	}

	obj := e.revenue
	if !e.maximize {
		obj = e.slack
	}
	obj = round1e9(obj)

	better := !e.found
	if e.found {
		if e.maximize {
			better = obj > e.bestObj
		} else {
			better = obj < e.bestObj
		}
	}
	if !better {
		return
	}

	e.found = true
	e.bestObj = obj
	e.bestRevenue = round1e9(e.revenue)
	e.bestAssign = assignments
	e.bestSlack = e.slackSnapshot()
}

// floorsHold is the exact leaf-level floor check on the incremental values.
//
// Complexity: O(F).
func (e *engine) floorsHold() bool {
	for _, f := range e.m.Floors {
		switch {
		case f.Kind.IsMaximize() && e.revenue < f.Value-f.Epsilon:
			return false
		case !f.Kind.IsMaximize() && e.slack > f.Value+f.Epsilon:
			return false
		}
	}

	return true
}

// slackSnapshot materializes the per-day slack map for the incumbent.
//
// Complexity: O(H).
func (e *engine) slackSnapshot() map[int]float64 {
	out := make(map[int]float64, e.horizon)
	for d := 1; d <= e.horizon; d++ {
		w := e.expected[d] - float64(e.m.CapacityOn(d))
		if w < 0 {
			w = 0
		}
		out[d] = round1e9(w)
	}

	return out
}

// nodeBound returns the admissible optimistic bound of the subtree rooted
// at depth i: an upper bound for maximize tiers, a lower bound for
// minimize tiers.
//
// Complexity: O(1).
func (e *engine) nodeBound(i int) float64 {
	if e.maximize {
		if i > e.n {
			i = e.n
		}
		return e.revenue + e.sufRevenue[i]
	}

	return e.slack
}

// recordOpen folds an unexplored subtree's bound into the reported bound.
//
// Complexity: O(1).
func (e *engine) recordOpen(b float64) {
	if !e.openSet {
		e.openSet = true
		e.openBound = b
		return
	}
	if e.maximize {
		if b > e.openBound {
			e.openBound = b
		}
	} else if b < e.openBound {
		e.openBound = b
	}
}

// result assembles the lexico.Result after the search returned.
func (e *engine) result() lexico.Result {
	if e.aborted {
		res := lexico.Result{Status: lexico.StatusTimeLimit}
		bound := e.openBound
		if !e.openSet {
			bound = e.bestObj
		}
		if e.found {
			res.Objective = e.bestObj
			res.Solution = e.solution()
			// The proven bound can never be worse than the incumbent.
			if e.maximize && bound < e.bestObj {
				bound = e.bestObj
			}
			if !e.maximize && bound > e.bestObj {
				bound = e.bestObj
			}
		}
		res.Bound = round1e9(bound)

		return res
	}

	if !e.found {
		return lexico.Result{Status: lexico.StatusInfeasible}
	}

	return lexico.Result{
		Status:    lexico.StatusOptimal,
		Objective: e.bestObj,
		Bound:     e.bestObj,
		Solution:  e.solution(),
	}
}

// solution materializes the incumbent as a core.Solution. Assignments are
// already in ascending booking-ID order because candidates are.
func (e *engine) solution() *core.Solution {
	return &core.Solution{
		Assignments: e.bestAssign,
		Objective:   e.bestObj,
		Revenue:     e.bestRevenue,
		SlackByDay:  e.bestSlack,
	}
}
