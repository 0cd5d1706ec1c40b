package ports

import (
	"context"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

// RideMutation changes a ride in place. Returning an error aborts the update.
type RideMutation func(r *domain.Ride) error

type RideRepo interface {
	Create(ctx context.Context, r *domain.Ride) error
	GetByID(ctx context.Context, id string) (*domain.Ride, error)
	List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error)
	ListByRider(ctx context.Context, userID string) ([]*domain.Ride, error)
	// Update loads the ride under a per-ride exclusive scope, applies fn and
	// persists the result atomically.
	Update(ctx context.Context, id string, fn RideMutation) (*domain.Ride, error)
	Delete(ctx context.Context, id string) error
}
