package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
)

// RideRepository keeps rides in process. Every ride has its own mutex that
// Update and Delete hold while they read-modify-write the ride.
type RideRepository struct {
	mu    sync.RWMutex
	rides map[string]*domain.Ride
	locks map[string]*sync.Mutex
}

func NewRideRepo() *RideRepository {
	return &RideRepository{
		rides: make(map[string]*domain.Ride),
		locks: make(map[string]*sync.Mutex),
	}
}

func (r *RideRepository) Create(_ context.Context, ride *domain.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rides[ride.ID]; ok {
		return fmt.Errorf("%w: ride %s already exists", domain.ErrValidation, ride.ID)
	}

	c := ride.Clone()
	c.BookedSeats = c.SeatCount()
	r.rides[ride.ID] = c
	r.locks[ride.ID] = &sync.Mutex{}

	return nil
}

func (r *RideRepository) GetByID(_ context.Context, id string) (*domain.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ride, ok := r.rides[id]
	if !ok {
		return nil, domain.ErrRideNotFound
	}

	return ride.Clone(), nil
}

func (r *RideRepository) List(_ context.Context, filter domain.RideFilter) ([]*domain.Ride, error) {
	res := r.collect(func(ride *domain.Ride) bool { return matches(ride, filter) })

	slices.SortStableFunc(res, func(a, b *domain.Ride) int {
		if c := a.DepartureTime.Compare(b.DepartureTime); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return res, nil
}

func (r *RideRepository) ListByRider(_ context.Context, userID string) ([]*domain.Ride, error) {
	res := r.collect(func(ride *domain.Ride) bool {
		return slices.ContainsFunc(ride.Bookings, func(b domain.Booking) bool { return b.UserID == userID })
	})

	slices.SortStableFunc(res, func(a, b *domain.Ride) int {
		return b.DepartureTime.Compare(a.DepartureTime)
	})

	return res, nil
}

func (r *RideRepository) Update(ctx context.Context, id string, fn ports.RideMutation) (*domain.Ride, error) {
	lock, err := r.lockFor(id)
	if err != nil {
		return nil, err
	}
	lock.Lock()
	defer lock.Unlock()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	ride, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = fn(ride); err != nil {
		return nil, err
	}

	ride.BookedSeats = ride.SeatCount()
	ride.Version++
	ride.UpdatedAt = time.Now().UTC()

	r.mu.Lock()
	r.rides[id] = ride.Clone()
	r.mu.Unlock()

	return ride, nil
}

func (r *RideRepository) Delete(_ context.Context, id string) error {
	lock, err := r.lockFor(id)
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	ride, ok := r.rides[id]
	if !ok {
		return domain.ErrRideNotFound
	}
	if ride.SeatCount() > 0 {
		return domain.ErrRideHasBookings
	}

	delete(r.rides, id)
	delete(r.locks, id)

	return nil
}

func (r *RideRepository) lockFor(id string) (*sync.Mutex, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lock, ok := r.locks[id]
	if !ok {
		return nil, domain.ErrRideNotFound
	}
	return lock, nil
}

func (r *RideRepository) collect(keep func(*domain.Ride) bool) []*domain.Ride {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Ride, 0, len(r.rides))
	for _, ride := range r.rides {
		if keep(ride) {
			res = append(res, ride.Clone())
		}
	}
	return res
}

func matches(ride *domain.Ride, f domain.RideFilter) bool {
	if f.From != "" && ride.From != f.From {
		return false
	}
	if f.To != "" && ride.To != f.To {
		return false
	}
	if f.Status != "" && ride.Status != f.Status {
		return false
	}
	if !f.Date.IsZero() &&
		ride.DepartureTime.UTC().Format(domain.DateKeyLayout) != f.Date.UTC().Format(domain.DateKeyLayout) {
		return false
	}
	if !f.ArrivalBefore.IsZero() && ride.EstimatedArrivalTime.After(f.ArrivalBefore) {
		return false
	}
	return true
}
