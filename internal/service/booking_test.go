package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/metrics"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports/mocks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// applyTo emulates RideRepo.Update over a copy of ride.
func applyTo(ride *domain.Ride) func(context.Context, string, ports.RideMutation) (*domain.Ride, error) {
	return func(_ context.Context, id string, fn ports.RideMutation) (*domain.Ride, error) {
		if id != ride.ID {
			return nil, domain.ErrRideNotFound
		}
		r := ride.Clone()
		if err := fn(r); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func bookingsWithOutcome(t *testing.T, reg *prometheus.Registry, outcome string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "weshare_bookings_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "outcome" && l.GetValue() == outcome {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

// occupancyOf returns the ride's occupancy gauge, or -1 when the series is absent.
func occupancyOf(t *testing.T, reg *prometheus.Registry, rideID string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != "weshare_ride_occupancy_ratio" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "ride_id" && l.GetValue() == rideID {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	return -1
}

func testRide(seats int, bookings ...domain.Booking) *domain.Ride {
	return &domain.Ride{
		ID:          "r1",
		From:        "Kigali",
		To:          "Huye",
		Seats:       seats,
		BookedSeats: len(bookings),
		Status:      domain.RideStatusActive,
		Bookings:    bookings,
	}
}

type bookingDeps struct {
	rides     *mocks.MockRideRepo
	users     *mocks.MockUserRepo
	notifier  *mocks.MockBookingNotifier
	publisher *mocks.MockEventPublisher
	registry  *prometheus.Registry
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		rides:     mocks.NewMockRideRepo(t),
		users:     mocks.NewMockUserRepo(t),
		notifier:  mocks.NewMockBookingNotifier(t),
		publisher: mocks.NewMockEventPublisher(t),
		registry:  prometheus.NewRegistry(),
	}
	svc := NewBookingService(d.rides, d.users, d.notifier, d.publisher, metrics.New(d.registry, "/metrics"), newTestLogger(t))
	return svc, d
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, d := newBookingService(t)

	user := &domain.User{ID: "u1", Username: "amina"}
	ride := testRide(2)

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))
	d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCreated && e.UserID == "u1" && e.BookedSeats == 1 && e.Seats == 2
	})).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	booking, err := svc.Book(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, domain.CheckInPending, booking.CheckInStatus)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, 1.0, bookingsWithOutcome(t, d.registry, OutcomeBooked))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_CapacityExceeded(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(1, domain.Booking{ID: "b1", UserID: "u0", CheckInStatus: domain.CheckInPending})

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))

	_, err := svc.Book(context.Background(), "r1", "u1")

	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Len(t, ride.Bookings, 1)
	assert.Equal(t, 1.0, bookingsWithOutcome(t, d.registry, OutcomeFull))
}

func TestBookingService_Book_OccupancyRecordedInsideUpdate(t *testing.T) {
	svc, d := newBookingService(t)

	user := &domain.User{ID: "u1"}
	ride := testRide(4)

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, fn ports.RideMutation) (*domain.Ride, error) {
			r := ride.Clone()
			require.NoError(t, fn(r))
			// the gauge is already set while the ride is still held
			assert.Equal(t, 0.25, occupancyOf(t, d.registry, "r1"))
			return r, nil
		})
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	_, err := svc.Book(context.Background(), "r1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_FailedMutationLeavesNoOccupancy(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(1, domain.Booking{ID: "b1", UserID: "u0", CheckInStatus: domain.CheckInPending})

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))

	_, err := svc.Book(context.Background(), "r1", "u1")

	require.ErrorIs(t, err, domain.ErrCapacityExceeded)
	assert.Equal(t, -1.0, occupancyOf(t, d.registry, "r1"))
}

func TestBookingService_Book_RideNotActive(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(3)
	ride.Status = domain.RideStatusCancelled

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))

	_, err := svc.Book(context.Background(), "r1", "u1")

	assert.ErrorIs(t, err, domain.ErrRideNotActive)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.users.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "r1", "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_RideNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.rides.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrRideNotFound)

	_, err := svc.Book(context.Background(), "missing", "u1")

	assert.ErrorIs(t, err, domain.ErrRideNotFound)
}

func TestBookingService_Book_PublishErrorDoesNotFail(t *testing.T) {
	svc, d := newBookingService(t)

	user := &domain.User{ID: "u1"}

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(testRide(2)))
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	_, err := svc.Book(context.Background(), "r1", "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SetCheckInStatus_Success(t *testing.T) {
	svc, d := newBookingService(t)

	user := &domain.User{ID: "u1"}
	ride := testRide(2, domain.Booking{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInPending})

	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))
	d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCheckInChanged && e.CheckInStatus == domain.CheckInCheckedIn
	})).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.notifier.EXPECT().NotifyCheckInChanged(mock.Anything, user, mock.Anything, mock.MatchedBy(func(b domain.Booking) bool {
		return b.ID == "b1" && b.CheckInStatus == domain.CheckInCheckedIn
	})).Return()

	b, err := svc.SetCheckInStatus(context.Background(), "r1", "b1", domain.CheckInCheckedIn)

	require.NoError(t, err)
	assert.Equal(t, domain.CheckInCheckedIn, b.CheckInStatus)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_SetCheckInStatus_NotFound(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(2, domain.Booking{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInPending})
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))

	_, err := svc.SetCheckInStatus(context.Background(), "r1", "missing", domain.CheckInCheckedIn)

	require.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.Equal(t, domain.CheckInPending, ride.Bookings[0].CheckInStatus)
}

func TestBookingService_SetCheckInStatus_InvalidTransition(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(2, domain.Booking{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInPending})
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))

	_, err := svc.SetCheckInStatus(context.Background(), "r1", "b1", domain.CheckInCompleted)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_SetCheckInStatus_UserLookupFails(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(2, domain.Booking{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInPending})

	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))
	d.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	b, err := svc.SetCheckInStatus(context.Background(), "r1", "b1", domain.CheckInCheckedIn)

	require.NoError(t, err)
	assert.Equal(t, domain.CheckInCheckedIn, b.CheckInStatus)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(2,
		domain.Booking{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInPending},
		domain.Booking{ID: "b2", UserID: "u2", CheckInStatus: domain.CheckInPending},
	)

	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))
	d.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e domain.BookingEvent) bool {
		return e.Type == domain.EventBookingCancelled && e.BookingID == "b1" && e.BookedSeats == 1
	})).Return(nil)

	err := svc.Cancel(context.Background(), "r1", "b1")

	require.NoError(t, err)
	assert.Equal(t, 0.5, occupancyOf(t, d.registry, "r1"))
}

func TestBookingService_Cancel_NotPending(t *testing.T) {
	svc, d := newBookingService(t)

	ride := testRide(2, domain.Booking{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInCheckedIn})
	d.rides.EXPECT().Update(mock.Anything, "r1", mock.Anything).RunAndReturn(applyTo(ride))

	err := svc.Cancel(context.Background(), "r1", "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_ListByRider(t *testing.T) {
	svc, d := newBookingService(t)

	dep := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	rides := []*domain.Ride{
		{
			ID: "r1", From: "Kigali", To: "Huye", DepartureTime: dep, Status: domain.RideStatusActive,
			Bookings: []domain.Booking{
				{ID: "b1", UserID: "u1"},
				{ID: "b2", UserID: "u2"},
				{ID: "b3", UserID: "u1"},
			},
		},
		{
			ID: "r2", From: "Huye", To: "Kigali", DepartureTime: dep.Add(48 * time.Hour), Status: domain.RideStatusCompleted,
			Bookings: []domain.Booking{{ID: "b4", UserID: "u1"}},
		},
	}
	d.rides.EXPECT().ListByRider(mock.Anything, "u1").Return(rides, nil)

	res, err := svc.ListByRider(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "b1", res[0].ID)
	assert.Equal(t, "r1", res[0].RideID)
	assert.Equal(t, "b3", res[1].ID)
	assert.Equal(t, "b4", res[2].ID)
	assert.Equal(t, domain.RideStatusCompleted, res[2].RideStatus)
}

func TestBookingService_ListByRider_Empty(t *testing.T) {
	svc, d := newBookingService(t)

	d.rides.EXPECT().ListByRider(mock.Anything, "u1").Return(nil, nil)

	res, err := svc.ListByRider(context.Background(), "u1")

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestBookingOutcome(t *testing.T) {
	assert.Equal(t, OutcomeFull, bookingOutcome(domain.ErrCapacityExceeded))
	assert.Equal(t, OutcomeRejected, bookingOutcome(domain.ErrRideNotActive))
	assert.Equal(t, OutcomeRejected, bookingOutcome(domain.ErrRideNotFound))
	assert.Equal(t, OutcomeError, bookingOutcome(errors.New("db error")))
}
