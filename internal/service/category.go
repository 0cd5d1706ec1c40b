package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"github.com/google/uuid"
)

type CategoryService struct {
	repo ports.CategoryRepo
}

func NewCategoryService(repo ports.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.AverageTime <= 0 {
		return nil, fmt.Errorf("%w: average_time must be positive", domain.ErrValidation)
	}

	category := &domain.Category{
		ID:          uuid.New().String(),
		Name:        name,
		AverageTime: input.AverageTime,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}
