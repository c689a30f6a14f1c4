package bootstrap

import (
	"context"
	"fmt"

	"absss-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type indexSpec struct {
	collection string
	keys       bson.D
	name       string
	unique     bool
}

var indexes = []indexSpec{
	{repository.MembersCollection, bson.D{{Key: "email", Value: 1}}, "uniq_member_email", true},
	{repository.UsersCollection, bson.D{{Key: "username", Value: 1}}, "uniq_user_username", true},
	{repository.UsersCollection, bson.D{{Key: "email", Value: 1}}, "uniq_user_email", true},

	{repository.EventsCollection, bson.D{{Key: "date", Value: -1}}, "event_date", false},
	{repository.EventsCollection, bson.D{{Key: "category", Value: 1}}, "event_category", false},
	{repository.PublicationsCollection, bson.D{{Key: "publishedDate", Value: -1}}, "publication_published", false},
	{repository.PublicationsCollection, bson.D{{Key: "category", Value: 1}}, "publication_category", false},
	{repository.BlogsCollection, bson.D{{Key: "publishedDate", Value: -1}}, "blog_published", false},
	{repository.BlogsCollection, bson.D{{Key: "category", Value: 1}}, "blog_category", false},
	{repository.BlogsCollection, bson.D{{Key: "isPublished", Value: 1}}, "blog_is_published", false},
	{repository.BlogsCollection, bson.D{{Key: "tags", Value: 1}}, "blog_tags", false},
	{repository.MembersCollection, bson.D{{Key: "role", Value: 1}, {Key: "name", Value: 1}}, "member_role_name", false},
	{repository.MembersCollection, bson.D{{Key: "isActive", Value: 1}}, "member_is_active", false},
	{repository.ContactsCollection, bson.D{{Key: "createdAt", Value: -1}}, "contact_created", false},
	{repository.ContactsCollection, bson.D{{Key: "isRead", Value: 1}}, "contact_is_read", false},
}

// EnsureIndexes is idempotent; creating an index that already exists with
// the same definition is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ix := range indexes {
		opts := options.Index().SetName(ix.name)
		if ix.unique {
			opts.SetUnique(true)
		}
		_, err := db.Collection(ix.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    ix.keys,
			Options: opts,
		})
		if err != nil {
			return fmt.Errorf("ensure index %s.%s: %w", ix.collection, ix.name, err)
		}
	}
	return nil
}
