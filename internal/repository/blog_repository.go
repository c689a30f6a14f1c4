package repository

import (
	"context"

	"absss-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BlogRepository struct {
	store[models.Blog]
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{store: newStore[models.Blog](db, BlogsCollection)}
}

func (r *BlogRepository) List(ctx context.Context, f BlogFilter) ([]models.Blog, error) {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.IsPublished != nil {
		q["isPublished"] = *f.IsPublished
	}
	if f.Tag != "" {
		q["tags"] = f.Tag
	}
	opts := sortBy(bson.E{Key: "publishedDate", Value: -1}, bson.E{Key: "_id", Value: -1})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return r.find(ctx, q, opts)
}

func (r *BlogRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	return r.findByID(ctx, id)
}

func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	return r.insert(ctx, b)
}

func (r *BlogRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Blog, error) {
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

// IncrementViews bumps the counter server side so concurrent views never
// lose an update.
func (r *BlogRepository) IncrementViews(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	return r.updateByID(ctx, id, bson.M{"$inc": bson.M{"views": 1}})
}

func (r *BlogRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.deleteByID(ctx, id)
}
