package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/lexopt/core"
)

// validDataset returns a minimal dataset that passes Validate;
// each test mutates one field to provoke a single sentinel.
func validDataset() *core.Dataset {
	return &core.Dataset{
		Horizon: 5,
		Bookings: []core.Booking{
			{ID: "b1", Start: 1, Length: 2, Category: "standard", PricePerNight: 100, ShowProb: 0.9},
		},
		Rooms: []core.Room{
			{ID: "r1", Category: "standard"},
		},
	}
}

// TestValidate_OK accepts a well-formed dataset.
func TestValidate_OK(t *testing.T) {
	require.NoError(t, core.Validate(validDataset()))
}

// TestValidate_Sentinels provokes each validation sentinel in turn.
func TestValidate_Sentinels(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.Dataset)
		want   error
	}{
		{"nil dataset", nil, core.ErrNilDataset},
		{"bad horizon", func(ds *core.Dataset) { ds.Horizon = 0 }, core.ErrBadHorizon},
		{"empty booking id", func(ds *core.Dataset) { ds.Bookings[0].ID = "" }, core.ErrEmptyID},
		{"duplicate booking id", func(ds *core.Dataset) {
			ds.Bookings = append(ds.Bookings, ds.Bookings[0])
		}, core.ErrDuplicateID},
		{"arrival before axis", func(ds *core.Dataset) { ds.Bookings[0].Start = 0 }, core.ErrStartOutOfRange},
		{"zero length", func(ds *core.Dataset) { ds.Bookings[0].Length = 0 }, core.ErrBadLength},
		{"negative price", func(ds *core.Dataset) { ds.Bookings[0].PricePerNight = -1 }, core.ErrNegativePrice},
		{"show prob above one", func(ds *core.Dataset) { ds.Bookings[0].ShowProb = 1.5 }, core.ErrBadShowProb},
		{"empty room id", func(ds *core.Dataset) { ds.Rooms[0].ID = "" }, core.ErrEmptyID},
		{"duplicate room id", func(ds *core.Dataset) {
			ds.Rooms = append(ds.Rooms, ds.Rooms[0])
		}, core.ErrDuplicateID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ds *core.Dataset
			if tc.mutate != nil {
				ds = validDataset()
				tc.mutate(ds)
			}
			assert.ErrorIs(t, core.Validate(ds), tc.want)
		})
	}
}

// TestCheckExclusivity_Violation detects a shared (room, day) slot.
func TestCheckExclusivity_Violation(t *testing.T) {
	ok := []core.Assignment{
		{BookingID: "b1", RoomID: "r1", Days: []int{1, 2}},
		{BookingID: "b2", RoomID: "r1", Days: []int{3}},
		{BookingID: "b3", RoomID: "r2", Days: []int{2}},
	}
	require.NoError(t, core.CheckExclusivity(ok))

	clash := append(ok, core.Assignment{BookingID: "b4", RoomID: "r1", Days: []int{2}})
	assert.ErrorIs(t, core.CheckExclusivity(clash), core.ErrRoomDoubleBooked)
}

// TestCheckContinuity_Violation detects day coverage mismatches.
func TestCheckContinuity_Violation(t *testing.T) {
	ds := &core.Dataset{
		Horizon: 5,
		Bookings: []core.Booking{
			{ID: "b1", Start: 2, Length: 3, Category: "standard", ShowProb: 1},
		},
		Rooms: []core.Room{{ID: "r1", Category: "standard"}},
	}

	good := []core.Assignment{{BookingID: "b1", RoomID: "r1", Days: []int{2, 3, 4}}}
	require.NoError(t, core.CheckContinuity(ds, good))

	short := []core.Assignment{{BookingID: "b1", RoomID: "r1", Days: []int{2, 3}}}
	assert.ErrorIs(t, core.CheckContinuity(ds, short), core.ErrBrokenStay)

	shifted := []core.Assignment{{BookingID: "b1", RoomID: "r1", Days: []int{3, 4, 5}}}
	assert.ErrorIs(t, core.CheckContinuity(ds, shifted), core.ErrBrokenStay)

	unknown := []core.Assignment{{BookingID: "ghost", RoomID: "r1", Days: []int{1}}}
	assert.ErrorIs(t, core.CheckContinuity(ds, unknown), core.ErrBrokenStay)
}
