package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/lexopt/core"
	"github.com/mkravets/lexopt/model"
)

// evalDataset: one room, three overlapping bookings, so acceptance drives
// both revenue and slack in hand-checkable ways.
func evalDataset() *core.Dataset {
	return &core.Dataset{
		Horizon: 3,
		Bookings: []core.Booking{
			{ID: "b1", Start: 1, Length: 2, Category: "standard", PricePerNight: 100, ShowProb: 0.9},
			{ID: "b2", Start: 1, Length: 1, Category: "standard", PricePerNight: 200, ShowProb: 0.8},
			{ID: "b3", Start: 2, Length: 2, Category: "standard", PricePerNight: 150, ShowProb: 0.7},
		},
		Rooms: []core.Room{{ID: "r1", Category: "standard"}},
	}
}

// TestEval_RevenueAndSlack checks the two objective expressions on a fixed
// acceptance vector against hand-computed values.
func TestEval_RevenueAndSlack(t *testing.T) {
	m, err := model.Build(evalDataset(), revenueTier, nil)
	require.NoError(t, err)
	require.Len(t, m.Candidates, 3)

	// Accept b1 and b2 (candidates are ID-sorted: b1, b2, b3).
	accept := []bool{true, true, false}

	assert.InDelta(t, 400.0, m.Revenue(accept), 1e-9, "100×2 + 200×1")

	// Day 1 expected shows: 0.9 + 0.8 = 1.7 against capacity 1 ⇒ slack 0.7;
	// day 2: 0.9 against 1 ⇒ 0; day 3: empty ⇒ 0.
	slack := m.SlackByDay(accept)
	assert.InDelta(t, 0.7, slack[1], 1e-9)
	assert.InDelta(t, 0.0, slack[2], 1e-9)
	assert.InDelta(t, 0.0, slack[3], 1e-9)
	assert.InDelta(t, 0.7, m.TotalSlack(accept), 1e-9)
}

// TestEval_ObjectiveFollowsTierKind checks Objective dispatch per kind.
func TestEval_ObjectiveFollowsTierKind(t *testing.T) {
	accept := []bool{true, true, true}

	mRev, err := model.Build(evalDataset(), revenueTier, nil)
	require.NoError(t, err)
	assert.InDelta(t, 700.0, mRev.Objective(accept), 1e-9)

	mSlack, err := model.Build(evalDataset(),
		model.TierSpec{Name: "L3", Kind: model.MinimizeSlack, Epsilon: 1e-6}, nil)
	require.NoError(t, err)
	// Day 1: 1.7−1 = 0.7; day 2: 1.6−1 = 0.6; day 3: 0.7−1 ⇒ 0.
	assert.InDelta(t, 1.3, mSlack.Objective(accept), 1e-9)
}

// TestEval_FloorsSatisfied checks both bound directions and the tolerance.
func TestEval_FloorsSatisfied(t *testing.T) {
	floors := []model.Floor{
		{Tier: "L2", Kind: model.MaximizeRevenue, Value: 400, Epsilon: 1e-6},
	}
	m, err := model.Build(evalDataset(),
		model.TierSpec{Name: "L3", Kind: model.MinimizeSlack, Epsilon: 1e-6}, floors)
	require.NoError(t, err)

	assert.True(t, m.FloorsSatisfied([]bool{true, true, false}), "revenue 400 meets the 400 floor")
	assert.False(t, m.FloorsSatisfied([]bool{true, false, false}), "revenue 200 violates the 400 floor")
	assert.True(t, m.FloorsSatisfied([]bool{true, true, true}), "exceeding a maximize floor is fine")

	// A minimize floor binds from above.
	ceiling := []model.Floor{
		{Tier: "L3", Kind: model.MinimizeSlack, Value: 0.7, Epsilon: 1e-6},
	}
	m2, err := model.Build(evalDataset(), revenueTier, ceiling)
	require.NoError(t, err)
	assert.True(t, m2.FloorsSatisfied([]bool{true, true, false}), "slack 0.7 is within the 0.7 ceiling")
	assert.False(t, m2.FloorsSatisfied([]bool{true, true, true}), "slack 1.3 exceeds the 0.7 ceiling")
}
