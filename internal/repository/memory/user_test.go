package memory

import (
	"context"
	"testing"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u2", Username: "zawadi"}))
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u1", Username: "amina"}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.User{ID: "u3", Username: "amina"}), domain.ErrUsernameTaken)

	u, err := repo.GetByUsername(ctx, "zawadi")
	require.NoError(t, err)
	assert.Equal(t, "u2", u.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "amina", users[0].Username)
}

func TestCategoryRepository(t *testing.T) {
	repo := NewCategoryRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Category{ID: "c1", Name: "express", AverageTime: time.Hour}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Category{ID: "c2", Name: "express"}), domain.ErrCategoryExists)

	c, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, c.AverageTime)

	_, err = repo.GetByID(ctx, "c2")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}
