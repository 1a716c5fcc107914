// Package lexopt is a lexicographic constraint optimization (LCO) toolkit
// for hotel revenue management: assign bookings to rooms over a finite day
// horizon, maximizing revenue at a higher-priority tier and minimizing
// overbooking slack at a lower-priority tier, with each solved tier's
// optimum locked in as a hard floor before the next tier runs.
//
// 🚀 What is lexopt?
//
//	A small, deterministic library that brings together:
//		• Core primitives: bookings, rooms, immutable datasets, solutions
//		• Model building: acceptance/assignment candidates, capacity tables,
//		  floor constraints for previously solved tiers
//		• Exact solving: depth-first branch-and-bound with admissible bounds,
//		  time limits and optimality gaps
//		• Floor propagation: strict tier precedence — a lower tier may never
//		  degrade a higher tier's locked value
//		• Rolling horizon: sliding decision windows with carried-forward state
//		• Multi-property: independent per-property solves, chain-level KPIs
//
// ✨ Why choose lexopt?
//
//   - Strict lexicographic precedence — floors, not scalarization weights
//   - Deterministic objective values — same data, same config, same floors
//   - Pure Go core – the exact solver needs no cgo and no external binaries
//   - Extensible – tiers are an ordered list; add a fairness tier without
//     touching the controller
//
// Under the hood, everything is organized into flat subpackages:
//
//	core/    — Booking, Room, Dataset, Solution types & invariant checks
//	model/   — tier model builder (candidates, capacities, floors)
//	lexico/  — floor propagation controller & the solver contract
//	bnb/     — exact branch-and-bound tier solver
//	rolling/ — rolling-horizon driver over sliding windows
//	chain/   — multi-property coordinator with bounded parallelism
//	dataset/ — CSV ingestion, reference instance, Monte Carlo scenarios
//	report/  — episode & chain KPI reports, CSV export
//	config/  — env-backed runtime options
//
// Quick sketch of a two-tier episode:
//
//	L2: maximize revenue  ──►  Z2* locked as  Rev ≥ Z2* − ε
//	L3: minimize slack under the revenue floor
//
// Dive into cmd/lexopt for a runnable demo on the reference
// 10-rooms × 5-days instance.
//
//	go get github.com/mkravets/lexopt
package lexopt
