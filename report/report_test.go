package report_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/lexopt/chain"
	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
	"github.com/mkravets/lexopt/report"
)

func demoDataset() *core.Dataset {
	return &core.Dataset{
		Horizon: 5,
		Bookings: []core.Booking{
			{ID: "b1", Start: 1, Length: 2, Category: "std", PricePerNight: 120.10, ShowProb: 0.9},
			{ID: "b2", Start: 3, Length: 1, Category: "std", PricePerNight: 200, ShowProb: 0.8},
		},
		Rooms: []core.Room{{ID: "r1", Category: "std"}},
	}
}

func demoEpisode() *lexico.Episode {
	return &lexico.Episode{
		ID: "ep-1",
		Solution: &core.Solution{
			Assignments: []core.Assignment{
				{BookingID: "b1", RoomID: "r1", Days: []int{1, 2}},
				{BookingID: "b2", RoomID: "r1", Days: []int{3}},
			},
			Revenue: 440.20,
		},
		Revenue: 440.20,
	}
}

func TestWriteEpisodeCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, report.WriteEpisodeCSV(&sb, demoDataset(), demoEpisode()))

	want := "episode_id,booking_id,room_id,start,end,revenue\n" +
		"ep-1,b1,r1,1,2,240.20\n" +
		"ep-1,b2,r1,3,3,200.00\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteEpisodeCSV_Errors(t *testing.T) {
	var sb strings.Builder

	t.Run("nil dataset", func(t *testing.T) {
		err := report.WriteEpisodeCSV(&sb, nil, demoEpisode())
		assert.ErrorIs(t, err, core.ErrNilDataset)
	})
	t.Run("nil episode", func(t *testing.T) {
		err := report.WriteEpisodeCSV(&sb, demoDataset(), nil)
		assert.ErrorIs(t, err, report.ErrNilEpisode)
	})
	t.Run("unknown booking", func(t *testing.T) {
		ep := demoEpisode()
		ep.Solution.Assignments[0].BookingID = "ghost"
		err := report.WriteEpisodeCSV(&sb, demoDataset(), ep)
		assert.ErrorIs(t, err, report.ErrUnknownBooking)
	})
}

func TestWriteChainCSV(t *testing.T) {
	rep := &chain.Report{
		Outcomes: []chain.Outcome{
			{Property: "alpha", Episode: &lexico.Episode{ID: "ep-a", Revenue: 730, Slack: 0}},
			{Property: "beta", Err: assert.AnError},
			{Property: "gamma", Episode: &lexico.Episode{ID: "ep-g", Revenue: 200.555, Slack: 1.5}},
		},
		Revenue:         decimal.NewFromFloat(930.56),
		Slack:           1.5,
		Feasible:        2,
		FloorsSatisfied: false,
	}

	var sb strings.Builder
	require.NoError(t, report.WriteChainCSV(&sb, rep))

	want := "property,status,revenue,slack,floors_satisfied\n" +
		"alpha,ok,730.00,0,true\n" +
		"beta,failed,0.00,0,false\n" +
		"gamma,ok,200.56,1.5,true\n" +
		"TOTAL,2/3 ok,930.56,1.5,false\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteChainCSV_NilReport(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, report.WriteChainCSV(&sb, nil), report.ErrNilReport)
}
