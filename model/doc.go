// Package model builds the combinatorial tier model the solver operates on.
//
// Given a validated core.Dataset, a tier specification (which objective to
// optimize) and any floors locked by previously solved tiers, Build produces
// a pure, immutable Model:
//
//   - Candidates: one acceptance decision per booking that is feasible under
//     category and calendar constraints, sorted by booking ID.
//   - Infeasible: bookings excluded from the acceptance set, each with the
//     reason (impossible date range, unknown category, zero inventory over
//     the full stay). Exclusion is booking-scoped — it never aborts a build.
//   - Capacity tables: rooms available per day, the cap_d of the overbooking
//     slack constraint w_d ≥ expected_shows_d − cap_d.
//   - Floors: evaluable bounds on prior tiers' objective expressions,
//     ≥ value−ε for maximize tiers and ≤ value+ε for minimize tiers.
//
// Room exclusivity and stay continuity are structural rather than explicit
// rows: a solution assigns each accepted stay to a single room that is free
// on every stay day, which enforces both invariants by construction.
//
// Construction is side-effect free: two Builds over the same inputs yield
// models that evaluate identically.
package model
