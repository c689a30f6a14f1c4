package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MonthCount struct {
	Year  int   `bson:"year"`
	Month int   `bson:"month"`
	Count int64 `bson:"count"`
}

type KeyCount struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

// DashboardRepository runs the read-only aggregations behind the admin
// dashboard. It works on raw collections rather than typed stores.
type DashboardRepository struct {
	db *mongo.Database
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) wrap(col, op string, err error) error {
	return store[bson.M]{col: r.db.Collection(col)}.wrap(op, err)
}

func (r *DashboardRepository) Count(ctx context.Context, col string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := r.db.Collection(col).CountDocuments(ctx, filter)
	if err != nil {
		return 0, r.wrap(col, "count", err)
	}
	return n, nil
}

// Recent returns the newest documents by createdAt, limited to fields.
func (r *DashboardRepository) Recent(ctx context.Context, col string, limit int64, fields ...string) ([]bson.M, error) {
	proj := bson.M{"createdAt": 1}
	for _, f := range fields {
		proj[f] = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetProjection(proj)

	cur, err := r.db.Collection(col).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, r.wrap(col, "recent", err)
	}
	defer cur.Close(ctx)

	out := make([]bson.M, 0, limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, r.wrap(col, "recent decode", err)
	}
	return out, nil
}

// Monthly groups documents created since the given instant by year and month.
func (r *DashboardRepository) Monthly(ctx context.Context, col string, since time.Time) ([]MonthCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"createdAt": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"year": bson.M{"$year": "$createdAt"}, "month": bson.M{"$month": "$createdAt"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{"_id": 0, "year": "$_id.year", "month": "$_id.month", "count": 1}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}}},
	}
	out := make([]MonthCount, 0)
	if err := r.aggregate(ctx, col, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GroupCount counts documents matching match per distinct value of field.
func (r *DashboardRepository) GroupCount(ctx context.Context, col, field string, match bson.M) ([]KeyCount, error) {
	if match == nil {
		match = bson.M{}
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	out := make([]KeyCount, 0)
	if err := r.aggregate(ctx, col, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DashboardRepository) aggregate(ctx context.Context, col string, pipeline mongo.Pipeline, out any) error {
	cur, err := r.db.Collection(col).Aggregate(ctx, pipeline)
	if err != nil {
		return r.wrap(col, "aggregate", err)
	}
	defer cur.Close(ctx)
	if err := cur.All(ctx, out); err != nil {
		return r.wrap(col, "aggregate decode", err)
	}
	return nil
}
