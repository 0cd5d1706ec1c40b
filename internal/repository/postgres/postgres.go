package postgres

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
