// Package report - CSV rendering.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mkravets/lexopt/chain"
	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
)

// Sentinel errors for report rendering.
var (
	// ErrNilEpisode indicates rendering without an episode.
	ErrNilEpisode = errors.New("report: episode is nil")

	// ErrNilReport indicates rendering without a chain report.
	ErrNilReport = errors.New("report: chain report is nil")

	// ErrUnknownBooking indicates an assignment referencing a booking the
	// dataset does not contain.
	ErrUnknownBooking = errors.New("report: assignment references unknown booking")
)

// EpisodeRow is one accepted assignment of an episode report.
type EpisodeRow struct {
	EpisodeID string
	BookingID string
	RoomID    string
	Start     int
	End       int
	Revenue   decimal.Decimal
}

// ChainRow is one property's line of a chain report. FloorsSatisfied is
// per-property feasibility on property rows and the chain-level AND on the
// totals row.
type ChainRow struct {
	Property        string
	Status          string
	Revenue         decimal.Decimal
	Slack           float64
	FloorsSatisfied bool
}

var episodeHeader = []string{"episode_id", "booking_id", "room_id", "start", "end", "revenue"}

// WriteEpisodeCSV renders ep's accepted assignments, one row per booking,
// in the order the solution reports them. ds supplies prices; revenue is
// price × stay nights, rounded to two places.
//
// Complexity: O(B) time plus the price index.
func WriteEpisodeCSV(w io.Writer, ds *core.Dataset, ep *lexico.Episode) error {
	if ds == nil {
		return core.ErrNilDataset
	}
	if ep == nil || ep.Solution == nil {
		return ErrNilEpisode
	}

	price := make(map[string]float64, len(ds.Bookings))
	for _, b := range ds.Bookings {
		price[b.ID] = b.PricePerNight
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(episodeHeader); err != nil {
		return err
	}
	for _, a := range ep.Solution.Assignments {
		p, ok := price[a.BookingID]
		if !ok {
			return fmt.Errorf("booking %q: %w", a.BookingID, ErrUnknownBooking)
		}
		row := EpisodeRow{
			EpisodeID: ep.ID,
			BookingID: a.BookingID,
			RoomID:    a.RoomID,
			Start:     a.Days[0],
			End:       a.Days[len(a.Days)-1],
			Revenue:   money(p * float64(len(a.Days))),
		}
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

var chainHeader = []string{"property", "status", "revenue", "slack", "floors_satisfied"}

// WriteChainCSV renders one row per property in input order, then a totals
// row aggregating the feasible ones.
//
// Complexity: O(P).
func WriteChainCSV(w io.Writer, rep *chain.Report) error {
	if rep == nil {
		return ErrNilReport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(chainHeader); err != nil {
		return err
	}
	for _, out := range rep.Outcomes {
		row := ChainRow{Property: out.Property, Status: "ok"}
		if out.Episode != nil {
			row.Revenue = money(out.Episode.Revenue)
			row.Slack = out.Episode.Slack
			row.FloorsSatisfied = true
		} else {
			row.Status = "failed"
			row.Revenue = decimal.Zero
		}
		if err := cw.Write(row.record()); err != nil {
			return err
		}
	}
	total := ChainRow{
		Property:        "TOTAL",
		Status:          fmt.Sprintf("%d/%d ok", rep.Feasible, len(rep.Outcomes)),
		Revenue:         rep.Revenue.Round(2),
		Slack:           rep.Slack,
		FloorsSatisfied: rep.FloorsSatisfied,
	}
	if err := cw.Write(total.record()); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

func (r EpisodeRow) record() []string {
	return []string{
		r.EpisodeID,
		r.BookingID,
		r.RoomID,
		strconv.Itoa(r.Start),
		strconv.Itoa(r.End),
		r.Revenue.StringFixed(2),
	}
}

func (r ChainRow) record() []string {
	return []string{
		r.Property,
		r.Status,
		r.Revenue.StringFixed(2),
		strconv.FormatFloat(r.Slack, 'f', -1, 64),
		strconv.FormatBool(r.FloorsSatisfied),
	}
}

// money normalizes a float amount to two decimal places.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
