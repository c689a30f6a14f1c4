package repository

import (
	"context"
	"time"

	"absss-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type UserRepository struct {
	store[models.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{store: newStore[models.User](db, UsersCollection, "username", "email")}
}

func (r *UserRepository) List(ctx context.Context, f UserFilter) ([]models.User, error) {
	q := bson.M{}
	if f.Role != "" {
		q["role"] = f.Role
	}
	if f.IsActive != nil {
		q["isActive"] = *f.IsActive
	}
	return r.find(ctx, q, sortBy(bson.E{Key: "createdAt", Value: -1}))
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	return r.findByID(ctx, id)
}

// FindByIdentifier matches the username exactly or the lower-cased email.
func (r *UserRepository) FindByIdentifier(ctx context.Context, username, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	return r.insert(ctx, u)
}

func (r *UserRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.User, error) {
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id bson.ObjectID, at time.Time) error {
	_, err := r.updateByID(ctx, id, bson.M{"$set": bson.M{"lastLogin": at}})
	return err
}

// CountActiveAdmins counts active admin accounts other than except.
func (r *UserRepository) CountActiveAdmins(ctx context.Context, except bson.ObjectID) (int64, error) {
	return r.count(ctx, bson.M{
		"role":     models.RoleAdmin,
		"isActive": true,
		"_id":      bson.M{"$ne": except},
	})
}

func (r *UserRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.deleteByID(ctx, id)
}
