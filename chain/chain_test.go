package chain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/lexopt/bnb"
	"github.com/mkravets/lexopt/chain"
	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/lexico"
	"github.com/mkravets/lexopt/model"
)

var twoTiers = []model.TierSpec{
	{Name: "L2", Kind: model.MaximizeRevenue, Epsilon: 1e-6},
	{Name: "L3", Kind: model.MinimizeSlack, Epsilon: 1e-6},
}

func newController(t *testing.T) *lexico.Controller {
	t.Helper()
	ctrl, err := lexico.NewController(twoTiers, bnb.New(), lexico.SolveConfig{TimeLimit: 5 * time.Second})
	require.NoError(t, err)

	return ctrl
}

// singleStay builds a one-room, one-booking property dataset.
func singleStay(id string, nights int, price float64) *core.Dataset {
	return &core.Dataset{
		Horizon: 7,
		Bookings: []core.Booking{
			{ID: id + "-b1", Start: 1, Length: nights, Category: "std", PricePerNight: price, ShowProb: 0.9},
		},
		Rooms: []core.Room{{ID: id + "-r1", Category: "std"}},
	}
}

func TestNewCoordinator_NilController(t *testing.T) {
	_, err := chain.NewCoordinator(nil, 4)
	assert.ErrorIs(t, err, chain.ErrNilController)
}

func TestRun_Validation(t *testing.T) {
	coord, err := chain.NewCoordinator(newController(t), 2)
	require.NoError(t, err)

	t.Run("empty chain", func(t *testing.T) {
		_, err := coord.Run(context.Background(), nil)
		assert.ErrorIs(t, err, chain.ErrNoProperties)
	})
	t.Run("duplicate property id", func(t *testing.T) {
		props := []chain.Property{
			{ID: "alpha", Dataset: singleStay("alpha", 2, 100)},
			{ID: "alpha", Dataset: singleStay("alpha2", 2, 100)},
		}
		_, err := coord.Run(context.Background(), props)
		assert.ErrorIs(t, err, chain.ErrDuplicateProperty)
	})
}

// TestRun_AggregatesChainRevenue solves three properties concurrently and
// checks outcomes keep input order and the decimal revenue sum is exact.
func TestRun_AggregatesChainRevenue(t *testing.T) {
	coord, err := chain.NewCoordinator(newController(t), 2)
	require.NoError(t, err)

	props := []chain.Property{
		{ID: "alpha", Dataset: singleStay("alpha", 2, 100)}, // 200
		{ID: "beta", Dataset: singleStay("beta", 3, 150)},   // 450
		{ID: "gamma", Dataset: singleStay("gamma", 1, 80)},  // 80
	}

	report, err := coord.Run(context.Background(), props)
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 3)

	for i, p := range props {
		out := report.Outcomes[i]
		assert.Equal(t, p.ID, out.Property)
		require.NoError(t, out.Err)
		require.NotNil(t, out.Episode)
	}
	assert.Equal(t, 3, report.Feasible)
	assert.True(t, report.FloorsSatisfied)
	assert.True(t, report.Revenue.Equal(decimal.NewFromInt(730)),
		"chain revenue %s", report.Revenue)
	assert.InDelta(t, 0.0, report.Slack, 1e-9)
}

// TestRun_FailedPropertyIsolated gives one property a malformed dataset
// and verifies the rest of the chain still solves.
func TestRun_FailedPropertyIsolated(t *testing.T) {
	coord, err := chain.NewCoordinator(newController(t), 2)
	require.NoError(t, err)

	broken := singleStay("beta", 2, 100)
	broken.Bookings = append(broken.Bookings, broken.Bookings[0]) // duplicate ID

	props := []chain.Property{
		{ID: "alpha", Dataset: singleStay("alpha", 2, 100)},
		{ID: "beta", Dataset: broken},
	}

	report, err := coord.Run(context.Background(), props)
	require.NoError(t, err)

	require.NoError(t, report.Outcomes[0].Err)
	require.Error(t, report.Outcomes[1].Err)
	var tierErr *lexico.InfeasibleTierError
	assert.ErrorAs(t, report.Outcomes[1].Err, &tierErr)
	assert.Nil(t, report.Outcomes[1].Episode)

	assert.Equal(t, 1, report.Feasible)
	// One failed property is enough to clear the chain-level AND.
	assert.False(t, report.FloorsSatisfied)
	assert.True(t, report.Revenue.Equal(decimal.NewFromInt(200)))
}

func TestRun_NoFeasibleProperty(t *testing.T) {
	coord, err := chain.NewCoordinator(newController(t), 1)
	require.NoError(t, err)

	broken := singleStay("alpha", 2, 100)
	broken.Horizon = 0

	report, err := coord.Run(context.Background(), []chain.Property{{ID: "alpha", Dataset: broken}})
	assert.ErrorIs(t, err, chain.ErrNoFeasibleProperty)
	require.NotNil(t, report)
	assert.Error(t, report.Outcomes[0].Err)
	assert.False(t, report.FloorsSatisfied)
}

func TestRun_ContextCanceled(t *testing.T) {
	coord, err := chain.NewCoordinator(newController(t), 2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = coord.Run(ctx, []chain.Property{{ID: "alpha", Dataset: singleStay("alpha", 2, 100)}})
	assert.True(t, errors.Is(err, context.Canceled))
}
