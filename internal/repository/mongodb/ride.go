package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/CynthiaM111/weshare-sub002/internal/service/ports"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxUpdateAttempts = 5

type RideRepository struct {
	coll *mongo.Collection
}

func NewRideRepo(coll *mongo.Collection) *RideRepository {
	return &RideRepository{coll: coll}
}

func (r *RideRepository) Create(ctx context.Context, ride *domain.Ride) error {
	if _, err := r.coll.InsertOne(ctx, toRideDoc(ride)); err != nil {
		return fmt.Errorf("insert ride: %w", err)
	}
	return nil
}

func (r *RideRepository) GetByID(ctx context.Context, id string) (*domain.Ride, error) {
	var doc rideDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRideNotFound
		}
		return nil, fmt.Errorf("get ride: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *RideRepository) List(ctx context.Context, filter domain.RideFilter) ([]*domain.Ride, error) {
	opts := options.Find().SetSort(bson.D{{Key: "departureTime", Value: 1}, {Key: "createdAt", Value: 1}})
	return r.find(ctx, filterDoc(filter), opts)
}

func (r *RideRepository) ListByRider(ctx context.Context, userID string) ([]*domain.Ride, error) {
	opts := options.Find().SetSort(bson.D{{Key: "departureTime", Value: -1}})
	return r.find(ctx, bson.M{"bookings.userId": userID}, opts)
}

// Update applies fn to the latest stored ride and writes it back only if no
// other writer bumped the version in between. Conflicts are retried.
func (r *RideRepository) Update(ctx context.Context, id string, fn ports.RideMutation) (*domain.Ride, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		ride, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		version := ride.Version
		if err = fn(ride); err != nil {
			return nil, err
		}

		ride.BookedSeats = ride.SeatCount()
		ride.Version = version + 1
		ride.UpdatedAt = time.Now().UTC()

		res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": id, "version": version}, toRideDoc(ride))
		if err != nil {
			return nil, fmt.Errorf("replace ride: %w", err)
		}
		if res.MatchedCount == 1 {
			return ride, nil
		}
	}

	return nil, domain.ErrConcurrentUpdate
}

func (r *RideRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "bookedSeats": 0})
	if err != nil {
		return fmt.Errorf("delete ride: %w", err)
	}
	if res.DeletedCount > 0 {
		return nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("check ride: %w", err)
	}
	if n > 0 {
		return domain.ErrRideHasBookings
	}

	return domain.ErrRideNotFound
}

func (r *RideRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Ride, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find rides: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []rideDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rides: %w", err)
	}

	res := make([]*domain.Ride, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}

	return res, nil
}

func filterDoc(filter domain.RideFilter) bson.M {
	q := bson.M{}
	if filter.From != "" {
		q["from"] = filter.From
	}
	if filter.To != "" {
		q["to"] = filter.To
	}
	if filter.Status != "" {
		q["status"] = string(filter.Status)
	}
	if !filter.Date.IsZero() {
		d := filter.Date.UTC()
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		q["departureTime"] = bson.M{"$gte": day, "$lt": day.AddDate(0, 0, 1)}
	}
	if !filter.ArrivalBefore.IsZero() {
		q["estimatedArrivalTime"] = bson.M{"$lte": filter.ArrivalBefore}
	}

	return q
}
