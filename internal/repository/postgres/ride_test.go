package postgres

import (
	"testing"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterClause_Empty(t *testing.T) {
	where, args := filterClause(domain.RideFilter{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterClause_AllFields(t *testing.T) {
	cat := time.FixedZone("CAT", 2*60*60)
	arrival := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	where, args := filterClause(domain.RideFilter{
		From:          "Kigali",
		To:            "Huye",
		Status:        domain.RideStatusActive,
		Date:          time.Date(2024, 5, 2, 1, 0, 0, 0, cat),
		ArrivalBefore: arrival,
	})

	assert.Equal(t,
		" WHERE origin = $1 AND destination = $2 AND status = $3"+
			" AND departure_time >= $4 AND departure_time < $5 AND estimated_arrival_time <= $6",
		where,
	)
	require.Len(t, args, 6)
	assert.Equal(t, "Kigali", args[0])
	assert.Equal(t, domain.RideStatusActive, args[2])
	// the UTC calendar day of the filter instant
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), args[3])
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), args[4])
	assert.Equal(t, arrival, args[5])
}

func TestFilterClause_PositionsFollowPresentFields(t *testing.T) {
	where, args := filterClause(domain.RideFilter{To: "Musanze", Status: domain.RideStatusCompleted})

	assert.Equal(t, " WHERE destination = $1 AND status = $2", where)
	assert.Equal(t, []any{"Musanze", domain.RideStatusCompleted}, args)
}
