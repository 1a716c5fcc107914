// Package bnb — exact branch-and-bound tier solver.
//
// Solve enumerates acceptance vectors over a model's candidates via a
// depth-first Branch-and-Bound search with deterministic branching,
// admissible bounds, and a soft time budget. It implements lexico.Solver,
// so the floor propagation controller can treat it as an external
// optimization capability and swap in a MILP bridge later without touching
// the controller.
//
// Rationale (succinct):
//  1. The model builder has already excluded unhostable bookings; here we
//     search only over candidates, in ascending booking-ID order.
//  2. Both objective expressions are monotone in acceptance: revenue and
//     expected shows only grow as bookings are accepted. This yields two
//     admissible bounds:
//     - maximize revenue: UB = revenueSoFar + Σ remaining revenues;
//     - minimize slack:   LB = slackSoFar (slack never decreases).
//     Prune whenever the bound cannot beat the incumbent or cannot reach a
//     locked revenue floor / stay under a locked slack ceiling.
//  3. Room assignment is checked by exact backtracking within each
//     category whenever a booking is accepted; infeasible acceptance sets
//     are pruned immediately. Assigning one room per whole stay enforces
//     exclusivity and continuity by construction.
//  4. Branching order is objective-aware but fixed: maximize tiers try
//     accept-first (tightens the incumbent early), minimize tiers try
//     reject-first. Same data + same config ⇒ same locked objective value.
//  5. Soft limits: the deadline and ctx are checked on node entry; on
//     expiry the search unwinds, recording the optimistic bounds of
//     unexplored subtrees so the reported gap is honest.
//
// Complexity:
//   - Worst case exponential in the candidate count (exact search);
//     practical speed comes from pruning and the monotone bounds.
//   - Per node: O(L) incremental state updates plus an assignment check
//     on accept branches.
//
// Statuses returned: StatusOptimal, StatusTimeLimit, StatusInfeasible.
// StatusUnbounded cannot occur for this model class (finite acceptance
// sets, bounded objectives) and is never produced.
package bnb
