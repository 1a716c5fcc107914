// Package bnb - solver type and sentinel errors.
package bnb

import (
	"errors"
	"math"
)

// Sentinel errors for solver invocation.
var (
	// ErrNilModel indicates a nil model was passed to Solve.
	ErrNilModel = errors.New("bnb: model is nil")
)

// Solver is the exact branch-and-bound implementation of lexico.Solver.
// It is stateless and safe for concurrent use: every Solve call owns its
// own search engine, so independent properties or scenario replicates may
// solve in parallel on disjoint data.
type Solver struct{}

// New returns a ready-to-use exact solver.
func New() *Solver { return &Solver{} }

// roundScale controls objective stabilization precision (1e-9). Locked
// floor values must be reproducible across platforms; rounding removes FP
// drift without affecting optimality.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
