package mongodb

import (
	"errors"
	"testing"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func storedRide(t *testing.T) bson.D {
	t.Helper()

	raw, err := bson.Marshal(toRideDoc(&domain.Ride{
		ID:      "r1",
		Seats:   3,
		Status:  domain.RideStatusActive,
		Version: 2,
		Bookings: []domain.Booking{
			domain.NewBooking("b1", "u1", time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)),
		},
	}))
	require.NoError(t, err)

	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func findResponse(doc bson.D) bson.D {
	return mtest.CreateCursorResponse(0, "weshare.rides", mtest.FirstBatch, doc)
}

func replaceResponse(matched int32) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: matched},
	)
}

func updateCommands(mt *mtest.T) []*event.CommandStartedEvent {
	var res []*event.CommandStartedEvent
	for _, e := range mt.GetAllStartedEvents() {
		if e.CommandName == "update" {
			res = append(res, e)
		}
	}
	return res
}

func TestRideRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	addB2 := func(calls *int) func(r *domain.Ride) error {
		return func(r *domain.Ride) error {
			*calls++
			return r.AddBooking(domain.NewBooking("b2", "u2", time.Now().UTC()))
		}
	}

	mt.Run("gives up after repeated version conflicts", func(mt *mtest.T) {
		doc := storedRide(mt.T)
		for i := 0; i < maxUpdateAttempts; i++ {
			mt.AddMockResponses(findResponse(doc), replaceResponse(0))
		}

		var calls int
		ride, err := NewRideRepo(mt.Coll).Update(mtest.Background, "r1", addB2(&calls))

		require.ErrorIs(mt, err, domain.ErrConcurrentUpdate)
		assert.Nil(mt, ride)
		assert.Equal(mt, maxUpdateAttempts, calls)

		updates := updateCommands(mt)
		require.Len(mt, updates, maxUpdateAttempts)
		for _, u := range updates {
			version := u.Command.Lookup("updates", "0", "q", "version")
			assert.Equal(mt, int64(2), version.AsInt64())
		}
	})

	mt.Run("retries once and returns the mutated ride", func(mt *mtest.T) {
		doc := storedRide(mt.T)
		mt.AddMockResponses(
			findResponse(doc), replaceResponse(0),
			findResponse(doc), replaceResponse(1),
		)

		var calls int
		ride, err := NewRideRepo(mt.Coll).Update(mtest.Background, "r1", addB2(&calls))

		require.NoError(mt, err)
		assert.Equal(mt, 2, calls)
		require.Len(mt, ride.Bookings, 2)
		assert.Equal(mt, "b1", ride.Bookings[0].ID)
		assert.Equal(mt, "b2", ride.Bookings[1].ID)
		assert.Equal(mt, 2, ride.BookedSeats)
		assert.Equal(mt, int64(3), ride.Version)

		updates := updateCommands(mt)
		require.Len(mt, updates, 2)
		written := updates[1].Command.Lookup("updates", "0", "u")
		assert.Equal(mt, int64(2), written.Document().Lookup("bookedSeats").AsInt64())
		assert.Equal(mt, int64(3), written.Document().Lookup("version").AsInt64())
	})

	mt.Run("failed mutation skips the write", func(mt *mtest.T) {
		mt.AddMockResponses(findResponse(storedRide(mt.T)))

		boom := errors.New("capacity check failed")
		_, err := NewRideRepo(mt.Coll).Update(mtest.Background, "r1", func(*domain.Ride) error {
			return boom
		})

		require.ErrorIs(mt, err, boom)
		assert.Empty(mt, updateCommands(mt))
	})

	mt.Run("missing ride", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "weshare.rides", mtest.FirstBatch))

		_, err := NewRideRepo(mt.Coll).Update(mtest.Background, "r1", func(*domain.Ride) error {
			mt.Fatal("mutation must not run for a missing ride")
			return nil
		})

		require.ErrorIs(mt, err, domain.ErrRideNotFound)
	})
}
