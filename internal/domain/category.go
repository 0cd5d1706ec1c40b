package domain

import "time"

// Category groups rides of one kind and carries the average travel time
// used to estimate arrival.
type Category struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	AverageTime time.Duration `json:"average_time"`
	CreatedAt   time.Time     `json:"created_at"`
}

type CreateCategoryInput struct {
	Name        string
	AverageTime time.Duration
}
