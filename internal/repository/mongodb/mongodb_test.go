package mongodb

import (
	"testing"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterDoc(t *testing.T) {
	arrival := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	q := filterDoc(domain.RideFilter{
		From:          "Kigali",
		Status:        domain.RideStatusActive,
		Date:          time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC),
		ArrivalBefore: arrival,
	})

	assert.Equal(t, "Kigali", q["from"])
	assert.NotContains(t, q, "to")
	assert.Equal(t, "active", q["status"])
	assert.Equal(t, bson.M{
		"$gte": time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		"$lt":  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}, q["departureTime"])
	assert.Equal(t, bson.M{"$lte": arrival}, q["estimatedArrivalTime"])
}

func TestFilterDoc_Empty(t *testing.T) {
	assert.Empty(t, filterDoc(domain.RideFilter{}))
}

func TestRideDoc_RoundTripThroughBSON(t *testing.T) {
	dep := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	ride := &domain.Ride{
		ID:                   "r1",
		CategoryID:           "c1",
		From:                 "Kigali",
		To:                   "Huye",
		DepartureTime:        dep,
		EstimatedArrivalTime: dep.Add(2 * time.Hour),
		Seats:                3,
		Price:                3500,
		Status:               domain.RideStatusActive,
		Bookings: []domain.Booking{
			{ID: "b1", UserID: "u1", CheckInStatus: domain.CheckInCheckedIn, CreatedAt: dep.Add(-time.Hour)},
			{ID: "b2", UserID: "u2", CheckInStatus: domain.CheckInPending, CreatedAt: dep.Add(-time.Minute)},
		},
		Version: 7,
	}

	raw, err := bson.Marshal(toRideDoc(ride))
	require.NoError(t, err)

	var doc rideDoc
	require.NoError(t, bson.Unmarshal(raw, &doc))
	got := doc.toDomain()

	assert.Equal(t, 2, got.BookedSeats)
	assert.Equal(t, ride.Bookings, got.Bookings)
	assert.Equal(t, int64(7), got.Version)
	assert.True(t, got.EstimatedArrivalTime.Equal(ride.EstimatedArrivalTime))

	// booking user ids are queried by ListByRider
	assert.Equal(t, "u1", bson.Raw(raw).Lookup("bookings", "0", "userId").StringValue())
}

func TestCategoryDoc_AverageTime(t *testing.T) {
	c := &domain.Category{ID: "c1", Name: "express", AverageTime: 150 * time.Minute}

	doc := toCategoryDoc(c)

	assert.Equal(t, int64(9000), doc.AverageTimeSec)
	assert.Equal(t, c.AverageTime, doc.toDomain().AverageTime)
}
