package scheduler

import (
	"context"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type rideCompleter interface {
	CompleteDeparted(ctx context.Context) ([]*domain.Ride, error)
}

// Scheduler periodically closes rides whose estimated arrival has passed.
type Scheduler struct {
	rideService rideCompleter
	interval    time.Duration
	logger      logger.Logger
}

func New(
	rideService rideCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		rideService: rideService,
		interval:    interval,
		logger:      logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.rideService.CompleteDeparted(ctx)
	if err != nil {
		s.logger.Error("failed to complete departed rides",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range completed {
		s.logger.Info("ride completed",
			logger.String("ride_id", r.ID),
			logger.String("from", r.From),
			logger.String("to", r.To),
			logger.Int("booked_seats", r.BookedSeats),
		)
	}
}
