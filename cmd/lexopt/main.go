// Command lexopt runs the built-in reference instance through the two-tier
// controller (revenue, then overbooking slack) and prints the episode the
// way a revenue analyst reads it: locked floors first, then daily slack,
// then the room plan. Optionally writes the episode as CSV.
//
// Usage:
//
//	lexopt [-out episode.csv]
//
// Runtime knobs come from the environment (see package config).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/mkravets/lexopt/bnb"
	"github.com/mkravets/lexopt/config"
	"github.com/mkravets/lexopt/dataset"
	"github.com/mkravets/lexopt/lexico"
	"github.com/mkravets/lexopt/model"
	"github.com/mkravets/lexopt/report"
)

func main() {
	out := flag.String("out", "", "write the episode CSV to this path")
	flag.Parse()
	defer glog.Flush()

	cfg, err := config.Load()
	if err != nil {
		glog.Exitf("config: %v", err)
	}

	tiers := []model.TierSpec{
		{Name: "L2", Kind: model.MaximizeRevenue, Epsilon: cfg.Epsilon},
		{Name: "L3", Kind: model.MinimizeSlack, Epsilon: cfg.Epsilon},
	}
	ctrl, err := lexico.NewController(tiers, bnb.New(), lexico.SolveConfig{
		TimeLimit: cfg.TimeLimit,
		Gap:       cfg.Gap,
	})
	if err != nil {
		glog.Exitf("controller: %v", err)
	}

	ds := dataset.Reference()
	ep, err := ctrl.Run(context.Background(), ds)
	if err != nil {
		glog.Exitf("episode: %v", err)
	}

	fmt.Println("=== Two-Tier LCO Demo ===")
	for _, f := range ep.Floors {
		fmt.Printf("Tier %s (%s) optimum = %.2f\n", f.Tier, f.Kind, f.Value)
	}
	fmt.Println("Daily slack per day:")
	for d := 1; d <= ds.Horizon; d++ {
		fmt.Printf("  Day %d: w_d = %.4f\n", d, ep.Solution.SlackByDay[d])
	}
	fmt.Println()
	fmt.Println("Accepted bookings and assigned room:")
	for _, a := range ep.Solution.Assignments {
		fmt.Printf("  Booking %s: stay_days=%v, room=%s\n", a.BookingID, a.Days, a.RoomID)
	}
	if len(ep.Excluded) > 0 {
		fmt.Println("Excluded at model build:")
		for _, ex := range ep.Excluded {
			fmt.Printf("  Booking %s: %v\n", ex.BookingID, ex.Reason)
		}
	}

	if *out == "" {
		return
	}
	f, err := os.Create(*out)
	if err != nil {
		glog.Exitf("create %s: %v", *out, err)
	}
	defer f.Close()
	if err := report.WriteEpisodeCSV(f, ds, ep); err != nil {
		glog.Exitf("write %s: %v", *out, err)
	}
	fmt.Printf("episode written to %s\n", *out)
}
