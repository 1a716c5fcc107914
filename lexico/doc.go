// Package lexico implements the floor propagation controller — the defining
// algorithm of lexicographic constraint optimization.
//
// Tiers execute strictly in precedence order. For tier k = 1..n the
// controller builds the model with every floor locked by tiers 1..k−1,
// solves it, and on success locks the optimal value as floor k with the
// tier's tolerance. A lower-ranked tier may never degrade a higher-ranked
// tier's locked value; on infeasibility the whole episode aborts with the
// failing tier attributed — an earlier floor is never silently relaxed.
// This is what distinguishes LCO from a single scalarized objective.
//
// The solver is an external capability behind the Solver interface:
// anything that can optimize a built model and report optimal/time-limit/
// infeasible/unbounded termination distinctly plugs in. Package bnb
// provides the in-repo exact implementation.
//
// Tie-breaking: when a tier's optimum is achieved by several solutions the
// selection among them is solver-defined. Callers may rely on locked
// objective values and on hard constraints, never on a specific assignment
// vector.
//
// Timeout policy: a time-limited solve whose incumbent is within the
// configured relative gap is accepted and the incumbent value locks the
// floor; otherwise the tier counts as infeasible for propagation.
package lexico
