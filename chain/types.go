// Package chain - coordinator types and sentinel errors.
package chain

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
)

// Sentinel errors for coordinator construction and execution.
var (
	// ErrNilController indicates a coordinator without a controller.
	ErrNilController = errors.New("chain: controller is nil")

	// ErrNoProperties indicates a run over an empty property list.
	ErrNoProperties = errors.New("chain: no properties")

	// ErrDuplicateProperty indicates two properties sharing an ID.
	ErrDuplicateProperty = errors.New("chain: duplicate property id")

	// ErrNoFeasibleProperty indicates a run in which every property failed.
	ErrNoFeasibleProperty = errors.New("chain: no property produced an episode")
)

// Property is one hotel of the chain: an identifier plus its own dataset.
type Property struct {
	// ID names the property; unique within one run.
	ID string

	// Dataset is the property's bookings, rooms, and day axis.
	Dataset *core.Dataset
}

// Outcome is one property's result, success or failure.
type Outcome struct {
	// Property is the property's ID.
	Property string

	// Episode is the controller report; nil when the property failed.
	Episode *lexico.Episode

	// Err is the property's failure, nil on success.
	Err error
}

// Report aggregates a chain run.
type Report struct {
	// Outcomes holds one entry per property, in input order.
	Outcomes []Outcome

	// Revenue is the decimal-exact sum of feasible properties' revenues.
	Revenue decimal.Decimal

	// Slack is the sum of feasible properties' overbooking slack.
	Slack float64

	// Feasible counts the properties that produced an episode.
	Feasible int

	// FloorsSatisfied is the chain-level floor aggregate: the logical AND
	// of per-property tier feasibility. A property's episode exists only
	// when every one of its tiers locked a floor, so this is true iff no
	// property failed.
	FloorsSatisfied bool
}
