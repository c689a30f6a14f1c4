package repository

import (
	"context"

	"absss-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type EventRepository struct {
	store[models.Event]
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{store: newStore[models.Event](db, EventsCollection)}
}

func eventQuery(f EventFilter) bson.M {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Upcoming != nil {
		if *f.Upcoming {
			q["date"] = bson.M{"$gte": f.Now}
		} else {
			q["date"] = bson.M{"$lt": f.Now}
		}
	}
	return q
}

// List orders by date, newest first.
func (r *EventRepository) List(ctx context.Context, f EventFilter) ([]models.Event, error) {
	opts := sortBy(bson.E{Key: "date", Value: -1}, bson.E{Key: "_id", Value: -1})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return r.find(ctx, eventQuery(f), opts)
}

func (r *EventRepository) Count(ctx context.Context, f EventFilter) (int64, error) {
	return r.count(ctx, eventQuery(f))
}

func (r *EventRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	return r.findByID(ctx, id)
}

func (r *EventRepository) Insert(ctx context.Context, e *models.Event) error {
	return r.insert(ctx, e)
}

func (r *EventRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Event, error) {
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *EventRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.deleteByID(ctx, id)
}
