package repository

import (
	"context"

	"absss-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type MemberRepository struct {
	store[models.Member]
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{store: newStore[models.Member](db, MembersCollection, "email")}
}

// List orders by role then name, ascending.
func (r *MemberRepository) List(ctx context.Context, f MemberFilter) ([]models.Member, error) {
	q := bson.M{}
	if f.Role != "" {
		q["role"] = f.Role
	}
	if f.IsActive != nil {
		q["isActive"] = *f.IsActive
	}
	return r.find(ctx, q, sortBy(bson.E{Key: "role", Value: 1}, bson.E{Key: "name", Value: 1}))
}

func (r *MemberRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Member, error) {
	return r.findByID(ctx, id)
}

func (r *MemberRepository) Insert(ctx context.Context, m *models.Member) error {
	return r.insert(ctx, m)
}

func (r *MemberRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Member, error) {
	return r.updateByID(ctx, id, bson.M{"$set": set})
}

func (r *MemberRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return r.deleteByID(ctx, id)
}
