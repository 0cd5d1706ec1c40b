package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, name, average_time, created_at)
			  VALUES ($1, $2, make_interval(secs => $3), $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, c.ID, c.Name, c.AverageTime.Seconds(), c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, name, EXTRACT(EPOCH FROM average_time)::bigint, created_at
			  FROM categories
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	var seconds int64
	if err = row.Scan(&c.ID, &c.Name, &seconds, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}
	c.AverageTime = time.Duration(seconds) * time.Second

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, EXTRACT(EPOCH FROM average_time)::bigint, created_at
			  FROM categories
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		var seconds int64
		if err = rows.Scan(&c.ID, &c.Name, &seconds, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.AverageTime = time.Duration(seconds) * time.Second
		res = append(res, &c)
	}

	return res, rows.Err()
}
