package ports

import (
	"context"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
