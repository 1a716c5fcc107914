// Package rolling - the window state machine.
package rolling

import (
	"context"
	"errors"
	"sort"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
)

// Driver slides a decision window across a dataset's day axis, running one
// controller episode per window.
type Driver struct {
	ctrl *lexico.Controller
	opts Options
}

// NewDriver validates the wiring and window geometry.
//
// Complexity: O(1).
func NewDriver(ctrl *lexico.Controller, opts Options) (*Driver, error) {
	if ctrl == nil {
		return nil, ErrNilController
	}
	if opts.Width < 1 {
		return nil, ErrBadWidth
	}
	if opts.Step < 1 {
		return nil, ErrBadStep
	}

	return &Driver{ctrl: ctrl, opts: opts}, nil
}

// run carries one Run invocation's mutable state; the Driver itself stays
// stateless so it can serve many datasets.
type run struct {
	ds      *core.Dataset
	pending map[string]core.Booking

	// occupied[roomID][day] marks commitments from earlier windows.
	occupied map[string]map[int]bool

	plan   Plan
	wStart int
	wEnd   int
	index  int
}

// Run executes the state machine over ds until the day axis is exhausted.
//
// Contract:
//   - ds must pass core.Validate.
//   - An infeasible window is recorded in the plan and the driver advances;
//     only ctx cancellation aborts the whole run.
//
// Complexity: ⌈H/Step⌉ controller episodes plus O(B) bookkeeping per window.
func (d *Driver) Run(ctx context.Context, ds *core.Dataset) (*Plan, error) {
	if err := core.Validate(ds); err != nil {
		return nil, err
	}

	r := &run{
		ds:       ds,
		pending:  make(map[string]core.Booking, len(ds.Bookings)),
		occupied: make(map[string]map[int]bool, len(ds.Rooms)),
		wStart:   1,
	}
	for _, b := range ds.Bookings {
		r.pending[b.ID] = b
	}

	state := StateAwaitingWindow
	for state != StateTerminal {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		switch state {
		case StateAwaitingWindow:
			if r.wStart > ds.Horizon {
				state = StateTerminal
				break
			}
			r.wEnd = r.wStart + d.opts.Width - 1
			if r.wEnd > ds.Horizon {
				r.wEnd = ds.Horizon
			}
			r.expirePast()
			state = StateSolving

		case StateSolving:
			if err := d.solveWindow(ctx, r); err != nil {
				return nil, err
			}
			state = StateAdvancing

		case StateAdvancing:
			r.wStart += d.opts.Step
			r.index++
			state = StateAwaitingWindow
		}
	}

	// Whatever is still pending was never resolvable.
	for id := range r.pending {
		r.plan.Unresolved = append(r.plan.Unresolved, id)
	}
	sort.Strings(r.plan.Unresolved)

	return &r.plan, nil
}

// solveWindow assembles the snapshot, runs one episode, and either commits
// the accepted assignments or records the failure. Only ctx cancellation
// propagates as an error.
func (d *Driver) solveWindow(ctx context.Context, r *run) error {
	snap := r.snapshot()
	res := WindowResult{Index: r.index, Start: r.wStart, End: r.wEnd}

	ep, err := d.ctrl.Run(ctx, snap)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		// Partial-failure semantics: report, advance, carry bookings forward.
		res.Err = err
		r.plan.Windows = append(r.plan.Windows, res)
		return nil
	}

	for _, a := range ep.Solution.Assignments {
		r.commit(a)
		res.Accepted = append(res.Accepted, a.BookingID)
		delete(r.pending, a.BookingID)
	}
	sort.Strings(res.Accepted)
	res.Episode = ep
	r.plan.Windows = append(r.plan.Windows, res)
	return nil
}

// snapshot builds the window's immutable dataset: pending bookings whose
// arrival falls inside the window, and rooms with committed occupancy
// folded into their closed-day calendars.
//
// Complexity: O(B + R·H).
func (r *run) snapshot() *core.Dataset {
	var visible []core.Booking
	for _, b := range r.pending {
		if b.Start >= r.wStart && b.Start <= r.wEnd {
			visible = append(visible, b)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].ID < visible[j].ID })

	rooms := make([]core.Room, 0, len(r.ds.Rooms))
	for _, room := range r.ds.Rooms {
		masked := core.Room{ID: room.ID, Category: room.Category}
		if len(room.Closed) > 0 || len(r.occupied[room.ID]) > 0 {
			masked.Closed = make(map[int]bool, len(room.Closed)+len(r.occupied[room.ID]))
			for day := range room.Closed {
				masked.Closed[day] = true
			}
			for day := range r.occupied[room.ID] {
				masked.Closed[day] = true
			}
		}
		rooms = append(rooms, masked)
	}

	return &core.Dataset{Horizon: r.ds.Horizon, Bookings: visible, Rooms: rooms}
}

// commit appends an accepted assignment to the log and closes its
// room-days for every later snapshot.
func (r *run) commit(a core.Assignment) {
	r.plan.Committed = append(r.plan.Committed, a)
	days := r.occupied[a.RoomID]
	if days == nil {
		days = make(map[int]bool, len(a.Days))
		r.occupied[a.RoomID] = days
	}
	for _, d := range a.Days {
		days[d] = true
	}
}

// expirePast drops pending bookings whose stay ended before the current
// window: no later window can host them, so they become unresolved.
func (r *run) expirePast() {
	for id, b := range r.pending {
		if b.Start+b.Length-1 < r.wStart {
			r.plan.Unresolved = append(r.plan.Unresolved, id)
			delete(r.pending, id)
		}
	}
}
