// Package rolling re-runs the floor propagation controller over a sliding
// decision window, carrying committed state forward between windows.
//
// The driver is a state machine over horizon windows:
//
//	awaiting-window → solving → advancing → … → terminal
//
// On each iteration it assembles the current window's visible bookings
// (pending arrivals within the window, including bookings carried forward
// from earlier windows) and a room snapshot with committed occupancy
// masked out, runs the controller to completion or infeasibility, commits
// accepted assignments to an append-only log, and advances the window by
// its fixed step until the day axis is exhausted.
//
// Failure policy: an infeasible window is recorded and the driver advances
// anyway, carrying forward the bookings that window could not resolve —
// partial failure is first-class, not exceptional. Context cancellation is
// different: it aborts the whole run, because the caller asked for that.
//
// Every window works on a fresh immutable snapshot, never on a shared
// mutated table, so each window's result is independently reproducible.
// The union of committed assignments across all windows preserves room
// exclusivity by construction: committed room-days are closed in every
// later snapshot.
package rolling
