package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkravets/lexopt/core"
)

// TestBooking_StayDays covers clipping at both horizon edges.
func TestBooking_StayDays(t *testing.T) {
	tests := []struct {
		name    string
		booking core.Booking
		horizon int
		want    []int
	}{
		{"inside horizon", core.Booking{Start: 2, Length: 3}, 5, []int{2, 3, 4}},
		{"clipped at end", core.Booking{Start: 4, Length: 3}, 5, []int{4, 5}},
		{"single night", core.Booking{Start: 5, Length: 1}, 5, []int{5}},
		{"entirely past horizon", core.Booking{Start: 6, Length: 2}, 5, nil},
		{"zero length", core.Booking{Start: 1, Length: 0}, 5, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.booking.StayDays(tc.horizon))
		})
	}
}

// TestRoom_AvailableOn verifies closed-day masks and horizon bounds.
func TestRoom_AvailableOn(t *testing.T) {
	r := core.Room{ID: "r1", Category: "standard", Closed: map[int]bool{3: true}}

	assert.True(t, r.AvailableOn(1, 5))
	assert.False(t, r.AvailableOn(3, 5), "closed day must be unavailable")
	assert.False(t, r.AvailableOn(0, 5), "day zero is outside the axis")
	assert.False(t, r.AvailableOn(6, 5), "day past horizon is outside the axis")
}

// TestDataset_CapacityOn counts only rooms open on the given day.
func TestDataset_CapacityOn(t *testing.T) {
	ds := &core.Dataset{
		Horizon: 3,
		Rooms: []core.Room{
			{ID: "r1", Category: "standard"},
			{ID: "r2", Category: "standard", Closed: map[int]bool{2: true}},
			{ID: "r3", Category: "suite"},
		},
	}

	assert.Equal(t, 3, ds.CapacityOn(1))
	assert.Equal(t, 2, ds.CapacityOn(2), "r2 is closed on day 2")
	assert.Equal(t, 0, ds.CapacityOn(4), "day past horizon has zero capacity")
}

// TestSolution_Accessors checks AcceptedIDs ordering and slack summation.
func TestSolution_Accessors(t *testing.T) {
	s := &core.Solution{
		Assignments: []core.Assignment{
			{BookingID: "b2", RoomID: "r1", Days: []int{1}},
			{BookingID: "b1", RoomID: "r2", Days: []int{1, 2}},
		},
		SlackByDay: map[int]float64{1: 0.5, 2: 1.25},
	}

	assert.Equal(t, []string{"b1", "b2"}, s.AcceptedIDs())
	assert.InDelta(t, 1.75, s.TotalSlack(), 1e-12)
}
