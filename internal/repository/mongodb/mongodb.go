package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ridesCollection      = "rides"
	usersCollection      = "users"
	categoriesCollection = "categories"
)

// Store owns the client and hands out collection-backed repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &Store{client: client, db: client.Database(database)}
	if err = s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

func (s *Store) Rides() *RideRepository {
	return NewRideRepo(s.db.Collection(ridesCollection))
}

func (s *Store) Users() *UserRepository {
	return NewUserRepo(s.db.Collection(usersCollection))
}

func (s *Store) Categories() *CategoryRepository {
	return NewCategoryRepo(s.db.Collection(categoriesCollection))
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		categoriesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ridesCollection: {
			{Keys: bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}, {Key: "departureTime", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "estimatedArrivalTime", Value: 1}}},
			{Keys: bson.D{{Key: "bookings.userId", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}

	return nil
}
