package ports

import (
	"context"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
