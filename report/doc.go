// Package report renders episode and chain outcomes as CSV for downstream
// revenue-management tooling.
//
// Money fields are rendered through decimal arithmetic with two fixed
// places so spreadsheets never see float artifacts like 319.99999999999994.
// Rows are emitted in a stable order (assignments by booking ID as the
// solver reports them, chain outcomes in property order), so diffing two
// report files is meaningful.
//
// Essence:
//   - WriteEpisodeCSV(w, ds, episode) — one row per accepted assignment.
//   - WriteChainCSV(w, report) — one row per property plus a totals row.
package report
