package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
}

func NewCategoryRepo() *CategoryRepository {
	return &CategoryRepository{categories: make(map[string]domain.Category)}
}

func (r *CategoryRepository) Create(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrCategoryExists
		}
	}
	r.categories[c.ID] = *c

	return nil
}

func (r *CategoryRepository) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		res = append(res, &c)
	}
	slices.SortFunc(res, func(a, b *domain.Category) int { return strings.Compare(a.Name, b.Name) })

	return res, nil
}
