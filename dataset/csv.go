// Package dataset - CSV ingestion.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mkravets/lexopt/core"
)

// Expected header rows, lowercase, in column order.
var (
	bookingHeader = []string{"id", "start", "length", "category", "price", "show_prob"}
	roomHeader    = []string{"id", "category", "closed_days"}
)

// LoadBookingsCSV parses booking requests from r.
//
// Schema: id,start,length,category,price,show_prob — one booking per row,
// header required. Parse failures carry the 1-based row number; structural
// validation (ID uniqueness, field ranges) is core.Validate's job.
//
// Complexity: O(rows).
func LoadBookingsCSV(r io.Reader) ([]core.Booking, error) {
	records, err := readAll(r, bookingHeader)
	if err != nil {
		return nil, err
	}

	bookings := make([]core.Booking, 0, len(records))
	for i, rec := range records {
		row := i + 2 // 1-based, after the header
		b := core.Booking{ID: rec[0], Category: rec[3]}
		if b.Start, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("row %d field %q: %w", row, "start", ErrBadRecord)
		}
		if b.Length, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("row %d field %q: %w", row, "length", ErrBadRecord)
		}
		if b.PricePerNight, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, fmt.Errorf("row %d field %q: %w", row, "price", ErrBadRecord)
		}
		if b.ShowProb, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return nil, fmt.Errorf("row %d field %q: %w", row, "show_prob", ErrBadRecord)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// LoadRoomsCSV parses room inventory from r.
//
// Schema: id,category,closed_days — closed_days is a semicolon-separated
// list of day indices (empty means always open), e.g. "2;3".
//
// Complexity: O(rows · closed days).
func LoadRoomsCSV(r io.Reader) ([]core.Room, error) {
	records, err := readAll(r, roomHeader)
	if err != nil {
		return nil, err
	}

	rooms := make([]core.Room, 0, len(records))
	for i, rec := range records {
		row := i + 2
		room := core.Room{ID: rec[0], Category: rec[1]}
		if rec[2] != "" {
			room.Closed = make(map[int]bool)
			for _, tok := range strings.Split(rec[2], ";") {
				day, convErr := strconv.Atoi(strings.TrimSpace(tok))
				if convErr != nil {
					return nil, fmt.Errorf("row %d field %q: %w", row, "closed_days", ErrBadRecord)
				}
				room.Closed[day] = true
			}
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

// readAll consumes r, checks the header against want, and returns the data
// records with the field count already enforced by encoding/csv.
func readAll(r io.Reader, want []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(want)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadRecord)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header: %w", ErrBadHeader)
	}
	for i, name := range records[0] {
		if strings.ToLower(strings.TrimSpace(name)) != want[i] {
			return nil, fmt.Errorf("column %d is %q, want %q: %w", i+1, name, want[i], ErrBadHeader)
		}
	}

	return records[1:], nil
}
