package repository

import (
	"context"

	"absss-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type PublicationRepository struct {
	store[models.Publication]
}

func NewPublicationRepository(db *mongo.Database) *PublicationRepository {
	return &PublicationRepository{store: newStore[models.Publication](db, PublicationsCollection)}
}

func (r *PublicationRepository) List(ctx context.Context, f PublicationFilter) ([]models.Publication, error) {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	opts := sortBy(bson.E{Key: "publishedDate", Value: -1}, bson.E{Key: "_id", Value: -1})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return r.find(ctx, q, opts)
}

func (r *PublicationRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Publication, error) {
	return r.findByID(ctx, id)
}

func (r *PublicationRepository) Insert(ctx context.Context, p *models.Publication) error {
	return r.insert(ctx, p)
}

func (r *PublicationRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Publication, error) {
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *PublicationRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.deleteByID(ctx, id)
}
