// Package core defines the central Booking, Room, Dataset, and Solution
// types shared by every lexopt component, together with staged dataset
// validation and the hard-invariant checkers used by drivers and tests.
//
// A Dataset is an immutable snapshot: once validated it is consumed, never
// mutated, by the model builder. Drivers that need to alter visibility
// (rolling windows, committed occupancy) construct fresh snapshots instead
// of mutating a shared one.
//
// Invariants guarded here:
//
//   - Exclusivity: a room hosts at most one accepted booking per day.
//   - Continuity: an accepted multi-day booking occupies one room for its
//     entire stay, with no gaps.
//
// Errors:
//
//	ErrNilDataset       - dataset pointer is nil.
//	ErrBadHorizon       - day horizon is not positive.
//	ErrEmptyID          - booking or room ID is the empty string.
//	ErrDuplicateID      - booking or room ID occurs more than once.
//	ErrStartOutOfRange  - booking arrival day lies before day 1.
//	ErrBadLength        - booking length of stay is not positive.
//	ErrNegativePrice    - booking price per night is negative.
//	ErrBadShowProb      - show probability outside [0,1].
//	ErrRoomDoubleBooked - two accepted assignments share a (room, day) pair.
//	ErrBrokenStay       - an accepted stay is split across rooms or days.
package core
