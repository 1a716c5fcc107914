// Package chain coordinates optimization episodes across the properties of
// a hotel chain.
//
// Each property is an independent dataset solved by the same tier
// configuration; there are no cross-property constraints, so properties
// run concurrently on a bounded worker pool. A Controller is stateless
// across runs (floors live and die with one episode), which is what makes
// sharing one controller between workers safe.
//
// Failure isolation: a property whose episode fails — an infeasible tier,
// a timeout outside the gap — is reported in its Outcome and never blocks
// the rest of the chain. Only context cancellation aborts the whole run.
// A run where not a single property produced an episode returns
// ErrNoFeasibleProperty.
//
// Chain revenue is aggregated with decimal arithmetic so per-property
// float64 objectives cannot drift when hundreds of properties are summed.
//
// Essence:
//   - NewCoordinator(ctrl, workers) → *Coordinator.
//   - Run(ctx, properties) → *Report with outcomes in input order.
package chain
