// Package chain - the bounded-concurrency property coordinator.
package chain

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mkravets/lexopt/lexico"
)

// Coordinator fans a chain's properties out over a bounded worker pool,
// one controller episode per property.
type Coordinator struct {
	ctrl    *lexico.Controller
	workers int
}

// NewCoordinator validates the wiring. workers bounds concurrent property
// solves; non-positive means runtime.NumCPU.
//
// Complexity: O(1).
func NewCoordinator(ctrl *lexico.Controller, workers int) (*Coordinator, error) {
	if ctrl == nil {
		return nil, ErrNilController
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Coordinator{ctrl: ctrl, workers: workers}, nil
}

// Run solves every property and aggregates the chain report.
//
// Contract:
//   - At least one property; property IDs unique.
//   - Outcomes land at the same index as their property, regardless of
//     completion order.
//   - A failed property is recorded, never fatal; ctx cancellation aborts
//     the whole run; a run with zero feasible properties returns
//     ErrNoFeasibleProperty alongside the full report.
//
// Complexity: P episodes over min(workers, P) goroutines.
func (c *Coordinator) Run(ctx context.Context, properties []Property) (*Report, error) {
	if len(properties) == 0 {
		return nil, ErrNoProperties
	}
	seen := make(map[string]struct{}, len(properties))
	for _, p := range properties {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("property %q: %w", p.ID, ErrDuplicateProperty)
		}
		seen[p.ID] = struct{}{}
	}

	outcomes := make([]Outcome, len(properties))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, p := range properties {
		g.Go(func() error {
			ep, err := c.ctrl.Run(gctx, p.Dataset)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				outcomes[i] = Outcome{Property: p.ID, Err: fmt.Errorf("property %q: %w", p.ID, err)}

				return nil
			}
			outcomes[i] = Outcome{Property: p.ID, Episode: ep}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Outcomes: outcomes, Revenue: decimal.Zero}
	for _, out := range outcomes {
		if out.Episode == nil {
			continue
		}
		report.Feasible++
		report.Revenue = report.Revenue.Add(decimal.NewFromFloat(out.Episode.Revenue))
		report.Slack += out.Episode.Slack
	}
	report.FloorsSatisfied = report.Feasible == len(outcomes)
	if report.Feasible == 0 {
		return report, ErrNoFeasibleProperty
	}

	return report, nil
}
