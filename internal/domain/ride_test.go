package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)

func newActiveRide(seats int) *Ride {
	return &Ride{
		ID:     "r1",
		From:   "Kigali",
		To:     "Huye",
		Seats:  seats,
		Status: RideStatusActive,
	}
}

func TestRide_AddBooking_SyncsBookedSeats(t *testing.T) {
	ride := newActiveRide(3)

	for i := 0; i < 3; i++ {
		err := ride.AddBooking(NewBooking(fmt.Sprintf("b%d", i), "u1", testNow))
		require.NoError(t, err)
		assert.Equal(t, len(ride.Bookings), ride.BookedSeats)
	}

	assert.Equal(t, 3, ride.SeatCount())
	assert.Equal(t, 0, ride.AvailableSeats())
	assert.Equal(t, CheckInPending, ride.Bookings[0].CheckInStatus)
	assert.Equal(t, testNow, ride.Bookings[0].CreatedAt)
}

func TestRide_AddBooking_CapacityExceeded(t *testing.T) {
	ride := newActiveRide(2)

	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))
	require.NoError(t, ride.AddBooking(NewBooking("b2", "u2", testNow)))

	err := ride.AddBooking(NewBooking("b3", "u3", testNow))

	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 2, ride.BookedSeats)
	assert.Len(t, ride.Bookings, 2)
}

func TestRide_AddBooking_DuplicateID(t *testing.T) {
	ride := newActiveRide(5)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))

	err := ride.AddBooking(NewBooking("b1", "u2", testNow))

	require.ErrorIs(t, err, ErrDuplicateBooking)
	assert.Len(t, ride.Bookings, 1)
}

func TestRide_AddBooking_RideNotActive(t *testing.T) {
	ride := newActiveRide(5)
	require.NoError(t, ride.Cancel(testNow))

	err := ride.AddBooking(NewBooking("b1", "u1", testNow))

	require.ErrorIs(t, err, ErrRideNotActive)
	assert.Empty(t, ride.Bookings)
}

func TestRide_SetCheckInStatus_FullLifecycle(t *testing.T) {
	ride := newActiveRide(2)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))

	b, err := ride.SetCheckInStatus("b1", CheckInCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, CheckInCheckedIn, b.CheckInStatus)

	b, err = ride.SetCheckInStatus("b1", CheckInCompleted)
	require.NoError(t, err)
	assert.Equal(t, CheckInCompleted, b.CheckInStatus)
	assert.Equal(t, CheckInCompleted, ride.Bookings[0].CheckInStatus)
}

func TestRide_SetCheckInStatus_NotFoundLeavesBookings(t *testing.T) {
	ride := newActiveRide(2)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))
	before := ride.Clone().Bookings

	_, err := ride.SetCheckInStatus("missing", CheckInCheckedIn)

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, before, ride.Bookings)
}

func TestRide_SetCheckInStatus_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from CheckInStatus
		to   CheckInStatus
	}{
		{"skip check-in", CheckInPending, CheckInCompleted},
		{"back to pending", CheckInCheckedIn, CheckInPending},
		{"out of completed", CheckInCompleted, CheckInCheckedIn},
		{"completed to pending", CheckInCompleted, CheckInPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ride := newActiveRide(1)
			ride.Bookings = []Booking{{ID: "b1", UserID: "u1", CheckInStatus: tt.from}}
			ride.BookedSeats = 1

			_, err := ride.SetCheckInStatus("b1", tt.to)

			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, ride.Bookings[0].CheckInStatus)
		})
	}
}

func TestRide_SetCheckInStatus_SameStatusIsNoop(t *testing.T) {
	ride := newActiveRide(1)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))

	b, err := ride.SetCheckInStatus("b1", CheckInPending)

	require.NoError(t, err)
	assert.Equal(t, CheckInPending, b.CheckInStatus)
}

func TestRide_CancelBooking(t *testing.T) {
	ride := newActiveRide(2)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))
	require.NoError(t, ride.AddBooking(NewBooking("b2", "u2", testNow)))

	removed, err := ride.CancelBooking("b1")

	require.NoError(t, err)
	assert.Equal(t, "b1", removed.ID)
	assert.Equal(t, 1, ride.BookedSeats)
	assert.Equal(t, "b2", ride.Bookings[0].ID)

	// освободившееся место снова доступно
	require.NoError(t, ride.AddBooking(NewBooking("b3", "u3", testNow)))
	assert.Equal(t, 2, ride.BookedSeats)
}

func TestRide_CancelBooking_NotPending(t *testing.T) {
	ride := newActiveRide(1)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))
	_, err := ride.SetCheckInStatus("b1", CheckInCheckedIn)
	require.NoError(t, err)

	_, err = ride.CancelBooking("b1")

	require.ErrorIs(t, err, ErrBookingNotPending)
	assert.Equal(t, 1, ride.BookedSeats)
}

func TestRide_CancelBooking_NotFound(t *testing.T) {
	ride := newActiveRide(1)

	_, err := ride.CancelBooking("missing")

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRide_Complete_FinishesCheckedInRiders(t *testing.T) {
	ride := newActiveRide(3)
	ride.Bookings = []Booking{
		{ID: "b1", CheckInStatus: CheckInCheckedIn},
		{ID: "b2", CheckInStatus: CheckInPending},
	}
	ride.BookedSeats = 2

	require.NoError(t, ride.Complete(testNow))

	assert.Equal(t, RideStatusCompleted, ride.Status)
	assert.Equal(t, CheckInCompleted, ride.Bookings[0].CheckInStatus)
	assert.Equal(t, CheckInPending, ride.Bookings[1].CheckInStatus)
	assert.ErrorIs(t, ride.Complete(testNow), ErrRideNotActive)
}

func TestRide_Cancel_OnlyActive(t *testing.T) {
	ride := newActiveRide(1)

	require.NoError(t, ride.Cancel(testNow))
	assert.Equal(t, RideStatusCancelled, ride.Status)
	assert.ErrorIs(t, ride.Cancel(testNow), ErrRideNotActive)
}

func TestRide_Clone_DoesNotShareBookings(t *testing.T) {
	ride := newActiveRide(2)
	require.NoError(t, ride.AddBooking(NewBooking("b1", "u1", testNow)))

	c := ride.Clone()
	_, err := c.SetCheckInStatus("b1", CheckInCheckedIn)
	require.NoError(t, err)

	assert.Equal(t, CheckInPending, ride.Bookings[0].CheckInStatus)
}

func TestParseRideStatus(t *testing.T) {
	st, err := ParseRideStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, RideStatusCompleted, st)

	_, err = ParseRideStatus("archived")
	assert.ErrorIs(t, err, ErrValidation)
}
