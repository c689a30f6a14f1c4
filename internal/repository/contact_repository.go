package repository

import (
	"context"

	"absss-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ContactRepository struct {
	store[models.Contact]
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{store: newStore[models.Contact](db, ContactsCollection)}
}

func (r *ContactRepository) List(ctx context.Context, f ContactFilter) ([]models.Contact, error) {
	q := bson.M{}
	if f.IsRead != nil {
		q["isRead"] = *f.IsRead
	}
	return r.find(ctx, q, sortBy(bson.E{Key: "createdAt", Value: -1}, bson.E{Key: "_id", Value: -1}))
}

func (r *ContactRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Contact, error) {
	return r.findByID(ctx, id)
}

func (r *ContactRepository) Insert(ctx context.Context, c *models.Contact) error {
	return r.insert(ctx, c)
}

func (r *ContactRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Contact, error) {
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *ContactRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.deleteByID(ctx, id)
}
