package ports

import (
	"context"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, ride *domain.Ride)
	NotifyCheckInChanged(ctx context.Context, user *domain.User, ride *domain.Ride, booking domain.Booking)
	NotifyRideCancelled(ctx context.Context, user *domain.User, ride *domain.Ride)
}
