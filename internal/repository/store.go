package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"absss-backend/internal/errs"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	EventsCollection       = "events"
	PublicationsCollection = "publications"
	MembersCollection      = "members"
	BlogsCollection        = "blogs"
	ContactsCollection     = "contacts"
	UsersCollection        = "users"
)

// store holds the CRUD plumbing shared by every collection. unique maps a
// uniquely indexed document key to the field name reported on conflicts.
type store[T any] struct {
	col    *mongo.Collection
	unique []string
}

func newStore[T any](db *mongo.Database, name string, unique ...string) store[T] {
	return store[T]{col: db.Collection(name), unique: unique}
}

func (s store[T]) find(ctx context.Context, filter bson.M, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cur, err := s.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, s.wrap("find", err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, s.wrap("decode", err)
	}
	return out, nil
}

func (s store[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, s.wrap("find one", err)
	}
	return &doc, nil
}

func (s store[T]) findByID(ctx context.Context, id bson.ObjectID) (*T, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s store[T]) insert(ctx context.Context, doc *T) error {
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return s.wrap("insert", err)
	}
	return nil
}

// updateByID applies update and returns the document as stored afterwards.
func (s store[T]) updateByID(ctx context.Context, id bson.ObjectID, update bson.M) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		return nil, s.wrap("update", err)
	}
	return &doc, nil
}

func (s store[T]) deleteByID(ctx context.Context, id bson.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return s.wrap("delete", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s %s: %w", s.col.Name(), id.Hex(), errs.ErrNotFound)
	}
	return nil
}

func (s store[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, s.wrap("count", err)
	}
	return n, nil
}

// wrap maps driver failures onto the error taxonomy: no document is
// NotFound, a duplicate key is a ValidationError on the unique field, and
// anything else means storage could not be reached.
func (s store[T]) wrap(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", s.col.Name(), errs.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		field := s.duplicateField(err)
		return errs.NewValidationError(errs.Field(field, "is already in use"))
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%s %s: %w: %v", s.col.Name(), op, errs.ErrStorageUnavailable, err)
	}
}

// duplicateField picks the unique key named in the server message, e.g.
// "E11000 duplicate key error ... index: uniq_user_email dup key: { email: ... }".
func (s store[T]) duplicateField(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, "dup key:"); i >= 0 {
		rest := msg[i:]
		for _, f := range s.unique {
			if strings.Contains(rest, f+":") {
				return f
			}
		}
	}
	for _, f := range s.unique {
		if strings.Contains(msg, f) {
			return f
		}
	}
	if len(s.unique) > 0 {
		return s.unique[0]
	}
	return "id"
}

func sortBy(keys ...bson.E) *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D(keys))
}
