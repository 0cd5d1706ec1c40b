package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
)

type UserRepository struct {
	mu         sync.RWMutex
	users      map[string]domain.User
	byUsername map[string]string
}

func NewUserRepo() *UserRepository {
	return &UserRepository{
		users:      make(map[string]domain.User),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}

	r.users[user.ID] = *user
	r.byUsername[user.Username] = user.ID

	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	id, ok := r.byUsername[username]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, &u)
	}
	slices.SortFunc(res, func(a, b *domain.User) int { return strings.Compare(a.Username, b.Username) })

	return res, nil
}
