package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository struct {
	coll *mongo.Collection
}

func NewCategoryRepo(coll *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{coll: coll}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if _, err := r.coll.InsertOne(ctx, toCategoryDoc(c)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var doc categoryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	res := make([]*domain.Category, 0, len(docs))
	for _, d := range docs {
		res = append(res, d.toDomain())
	}

	return res, nil
}
