// Package dataset provides instance ingestion and generation: the built-in
// reference instance, CSV loaders for tabular input, and seeded Monte Carlo
// scenario replication.
//
// The package is deliberately dumb about schema semantics: loaders parse
// fields and attribute failures to rows, while structural validation stays
// with core.Validate so every ingestion path shares one contract.
//
// Determinism: Scenarios is fully seeded (seed==0 selects a fixed default),
// so a replicate set is reproducible across runs and platforms.
//
// Essence:
//   - Reference() → the 10-room, 5-day, 12-booking demo instance.
//   - LoadBookingsCSV / LoadRoomsCSV → tabular ingestion.
//   - Scenarios(base, n, seed) → show-probability replicates.
package dataset
