// Package rolling - driver types and sentinel errors.
package rolling

import (
	"errors"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
)

// Sentinel errors for driver construction.
var (
	// ErrNilController indicates a driver without a controller.
	ErrNilController = errors.New("rolling: controller is nil")

	// ErrBadWidth indicates a window width below one day.
	ErrBadWidth = errors.New("rolling: window width must be at least 1 day")

	// ErrBadStep indicates a window step below one day.
	ErrBadStep = errors.New("rolling: window step must be at least 1 day")
)

// State enumerates the driver's state machine.
type State int

const (
	// StateAwaitingWindow: the next window is being assembled.
	StateAwaitingWindow State = iota

	// StateSolving: the controller runs on the current window snapshot.
	StateSolving

	// StateAdvancing: committed state recorded, the window slides forward.
	StateAdvancing

	// StateTerminal: the day axis is exhausted.
	StateTerminal
)

// String names the state for logs and tests.
func (s State) String() string {
	switch s {
	case StateAwaitingWindow:
		return "awaiting-window"
	case StateSolving:
		return "solving"
	case StateAdvancing:
		return "advancing"
	default:
		return "terminal"
	}
}

// Options configures the sliding window geometry.
type Options struct {
	// Width is the window length in days.
	Width int

	// Step is how many days the window advances each iteration.
	Step int
}

// WindowResult records one window's outcome, success or failure.
type WindowResult struct {
	// Index is the zero-based window sequence number.
	Index int

	// Start and End are the window's inclusive day bounds.
	Start, End int

	// Episode is the controller report; nil when the window failed.
	Episode *lexico.Episode

	// Err is the window's failure, nil on success. A failed window never
	// aborts the run; it is reported here with full context.
	Err error

	// Accepted lists booking IDs committed by this window, ascending.
	Accepted []string
}

// Plan is the driver's final output: the append-only commit log, the
// per-window results, and the bookings no window could resolve.
type Plan struct {
	// Committed is the union of accepted assignments across all windows;
	// restricted to any single day it still satisfies room exclusivity.
	Committed []core.Assignment

	// Windows holds one result per window, in order.
	Windows []WindowResult

	// Unresolved lists booking IDs that were never accepted, ascending.
	Unresolved []string
}
