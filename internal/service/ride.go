package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RideService struct {
	rideRepo     ports.RideRepo
	categoryRepo ports.CategoryRepo
	userRepo     ports.UserRepo
	notifier     ports.BookingNotifier
	publisher    ports.EventPublisher
	metrics      ports.BookingMetrics
	logger       logger.Logger
}

func NewRideService(
	rideRepo ports.RideRepo,
	categoryRepo ports.CategoryRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	metrics ports.BookingMetrics,
	logger logger.Logger,
) *RideService {
	return &RideService{
		rideRepo:     rideRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		publisher:    publisher,
		metrics:      metrics,
		logger:       logger,
	}
}

func (s *RideService) Create(ctx context.Context, input domain.CreateRideInput) (*domain.Ride, error) {
	from := strings.TrimSpace(input.From)
	to := strings.TrimSpace(input.To)
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from and to are required", domain.ErrValidation)
	}
	if input.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.DepartureTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: departure_time must be in the future", domain.ErrValidation)
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	now := time.Now().UTC()
	departure := input.DepartureTime.UTC()
	ride := &domain.Ride{
		ID:                   uuid.New().String(),
		CategoryID:           category.ID,
		AgencyID:             input.AgencyID,
		From:                 from,
		To:                   to,
		DepartureTime:        departure,
		EstimatedArrivalTime: departure.Add(category.AverageTime),
		Seats:                input.Seats,
		Price:                input.Price,
		Status:               domain.RideStatusActive,
		Bookings:             []domain.Booking{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err = s.rideRepo.Create(ctx, ride); err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}

	s.logger.Info("ride created",
		logger.String("ride_id", ride.ID),
		logger.String("from", ride.From),
		logger.String("to", ride.To),
		logger.Int("seats", ride.Seats),
	)

	return ride, nil
}

func (s *RideService) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	return s.rideRepo.GetByID(ctx, id)
}

func (s *RideService) List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error) {
	return s.rideRepo.List(ctx, filter)
}

func (s *RideService) ListGrouped(ctx context.Context, filter domain.RideFilter) ([]domain.RouteGroup, error) {
	rides, err := s.rideRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}

	return domain.GroupRidesByRouteAndDate(rides), nil
}

func (s *RideService) Cancel(ctx context.Context, id string) (*domain.Ride, error) {
	now := time.Now().UTC()
	ride, err := s.rideRepo.Update(ctx, id, func(r *domain.Ride) error {
		return r.Cancel(now)
	})
	if err != nil {
		return nil, fmt.Errorf("cancel ride: %w", err)
	}

	s.metrics.ForgetRide(id)

	s.logger.Info("ride cancelled",
		logger.String("ride_id", id),
		logger.Int("booked_seats", ride.BookedSeats),
	)

	s.publish(ctx, domain.NewRideEvent(domain.EventRideCancelled, ride, now))

	if ride.SeatCount() > 0 {
		go s.notifyCancelled(context.WithoutCancel(ctx), ride)
	}

	return ride, nil
}

func (s *RideService) Delete(ctx context.Context, id string) error {
	if err := s.rideRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ride: %w", err)
	}

	s.metrics.ForgetRide(id)

	s.logger.Info("ride deleted", logger.String("ride_id", id))
	return nil
}

// CompleteDeparted closes active rides whose estimated arrival has passed.
func (s *RideService) CompleteDeparted(ctx context.Context) ([]*domain.Ride, error) {
	now := time.Now().UTC()
	due, err := s.rideRepo.List(ctx, domain.RideFilter{
		Status:        domain.RideStatusActive,
		ArrivalBefore: now,
	})
	if err != nil {
		return nil, fmt.Errorf("list departed rides: %w", err)
	}

	completed := make([]*domain.Ride, 0, len(due))
	for _, d := range due {
		ride, err := s.rideRepo.Update(ctx, d.ID, func(r *domain.Ride) error {
			return r.Complete(now)
		})
		if err != nil {
			// cancelled or completed concurrently
			if errors.Is(err, domain.ErrRideNotActive) {
				continue
			}
			s.logger.Error("failed to complete ride",
				logger.String("ride_id", d.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		completed = append(completed, ride)
		s.metrics.ForgetRide(ride.ID)
		s.publish(ctx, domain.NewRideEvent(domain.EventRideCompleted, ride, now))
	}

	if len(completed) > 0 {
		s.logger.Info("departed rides completed", logger.Int("count", len(completed)))
	}

	return completed, nil
}

func (s *RideService) notifyCancelled(ctx context.Context, ride *domain.Ride) {
	notified := make(map[string]struct{}, len(ride.Bookings))
	for _, b := range ride.Bookings {
		if _, ok := notified[b.UserID]; ok {
			continue
		}
		notified[b.UserID] = struct{}{}

		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for cancel notification",
				logger.String("user_id", b.UserID),
			)
			continue
		}

		s.notifier.NotifyRideCancelled(ctx, user, ride)
	}
}

func (s *RideService) publish(ctx context.Context, event domain.BookingEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish ride event",
			logger.String("type", string(event.Type)),
			logger.String("ride_id", event.RideID),
			logger.String("error", err.Error()),
		)
	}
}
