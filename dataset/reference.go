// Package dataset - the built-in reference instance.
package dataset

import (
	"fmt"

	"github.com/mkravets/lexopt/core"
)

// Reference returns the canonical demo instance: 10 identical standard
// rooms over a 5-day axis and 12 booking requests. No day has more than
// six concurrent stays, so full acceptance is assignable and the revenue
// optimum is 3115.
//
// The returned dataset is freshly allocated on every call; callers may
// mutate it freely.
func Reference() *core.Dataset {
	specs := []struct {
		start  int
		length int
		price  float64
		show   float64
	}{
		{1, 2, 120, 0.92},
		{1, 3, 110, 0.85},
		{2, 2, 150, 0.90},
		{2, 3, 130, 0.80},
		{3, 2, 140, 0.88},
		{3, 3, 100, 0.83},
		{4, 2, 160, 0.87},
		{4, 2, 115, 0.78},
		{5, 1, 200, 0.95},
		{1, 1, 180, 0.90},
		{2, 1, 170, 0.82},
		{3, 1, 175, 0.89},
	}

	ds := &core.Dataset{Horizon: 5}
	for i, s := range specs {
		ds.Bookings = append(ds.Bookings, core.Booking{
			ID:            fmt.Sprintf("b%02d", i+1),
			Start:         s.start,
			Length:        s.length,
			Category:      "standard",
			PricePerNight: s.price,
			ShowProb:      s.show,
		})
	}
	for i := 1; i <= 10; i++ {
		ds.Rooms = append(ds.Rooms, core.Room{ID: fmt.Sprintf("r%02d", i), Category: "standard"})
	}

	return ds
}
