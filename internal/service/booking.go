package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	OutcomeBooked   = "booked"
	OutcomeFull     = "full"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type BookingService struct {
	rideRepo  ports.RideRepo
	userRepo  ports.UserRepo
	notifier  ports.BookingNotifier
	publisher ports.EventPublisher
	metrics   ports.BookingMetrics
	logger    logger.Logger
}

func NewBookingService(
	rideRepo ports.RideRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	metrics ports.BookingMetrics,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		rideRepo:  rideRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

func (s *BookingService) Book(ctx context.Context, rideID, userID string) (*domain.Booking, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	booking := domain.NewBooking(uuid.New().String(), userID, now)

	ride, err := s.rideRepo.Update(ctx, rideID, func(r *domain.Ride) error {
		if err := r.AddBooking(booking); err != nil {
			return err
		}
		// под блокировкой поездки: Cancel вызывает ForgetRide только после нас
		s.metrics.ObserveOccupancy(r)
		return nil
	})
	if err != nil {
		s.metrics.ObserveBooking(bookingOutcome(err))
		return nil, fmt.Errorf("add booking: %w", err)
	}
	s.metrics.ObserveBooking(OutcomeBooked)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("ride_id", rideID),
		logger.String("user_id", userID),
		logger.Int("booked_seats", ride.BookedSeats),
		logger.Int("seats", ride.Seats),
	)

	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCreated, ride, booking, now))
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, ride)

	return &booking, nil
}

func (s *BookingService) SetCheckInStatus(
	ctx context.Context,
	rideID, bookingID string,
	status domain.CheckInStatus,
) (*domain.Booking, error) {
	var updated domain.Booking
	ride, err := s.rideRepo.Update(ctx, rideID, func(r *domain.Ride) error {
		b, err := r.SetCheckInStatus(bookingID, status)
		if err != nil {
			return err
		}
		updated = *b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("set check-in status: %w", err)
	}
	s.metrics.ObserveCheckIn(status)

	s.logger.Info("check-in status changed",
		logger.String("booking_id", bookingID),
		logger.String("ride_id", rideID),
		logger.String("status", string(status)),
	)

	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCheckInChanged, ride, updated, time.Now().UTC()))

	// уведомление не должно ломать смену статуса
	user, err := s.userRepo.GetByID(ctx, updated.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", updated.UserID),
			logger.String("error", err.Error()),
		)
		return &updated, nil
	}

	go s.notifier.NotifyCheckInChanged(context.WithoutCancel(ctx), user, ride, updated)

	return &updated, nil
}

func (s *BookingService) Cancel(ctx context.Context, rideID, bookingID string) error {
	var removed domain.Booking
	ride, err := s.rideRepo.Update(ctx, rideID, func(r *domain.Ride) error {
		b, err := r.CancelBooking(bookingID)
		if err != nil {
			return err
		}
		removed = b
		s.metrics.ObserveOccupancy(r)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("ride_id", rideID),
		logger.String("user_id", removed.UserID),
	)

	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, ride, removed, time.Now().UTC()))

	return nil
}

func (s *BookingService) ListByRider(ctx context.Context, userID string) ([]domain.RiderBooking, error) {
	rides, err := s.rideRepo.ListByRider(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list rides by rider: %w", err)
	}

	res := make([]domain.RiderBooking, 0, len(rides))
	for _, r := range rides {
		for _, b := range r.BookingsOf(userID) {
			res = append(res, domain.RiderBooking{
				Booking:       b,
				RideID:        r.ID,
				From:          r.From,
				To:            r.To,
				DepartureTime: r.DepartureTime,
				RideStatus:    r.Status,
			})
		}
	}

	return res, nil
}

func (s *BookingService) publish(ctx context.Context, event domain.BookingEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish booking event",
			logger.String("type", string(event.Type)),
			logger.String("ride_id", event.RideID),
			logger.String("error", err.Error()),
		)
	}
}

func bookingOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrCapacityExceeded):
		return OutcomeFull
	case errors.Is(err, domain.ErrRideNotActive),
		errors.Is(err, domain.ErrRideNotFound),
		errors.Is(err, domain.ErrDuplicateBooking):
		return OutcomeRejected
	default:
		return OutcomeError
	}
}
