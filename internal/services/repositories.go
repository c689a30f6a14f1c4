package services

import (
	"context"
	"time"

	"absss-backend/internal/models"
	"absss-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The services depend on these narrow views of the mongo repositories so
// tests can substitute in-memory stores.

type EventRepo interface {
	List(ctx context.Context, f repository.EventFilter) ([]models.Event, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	Insert(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Event, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type PublicationRepo interface {
	List(ctx context.Context, f repository.PublicationFilter) ([]models.Publication, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Publication, error)
	Insert(ctx context.Context, p *models.Publication) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Publication, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type MemberRepo interface {
	List(ctx context.Context, f repository.MemberFilter) ([]models.Member, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Member, error)
	Insert(ctx context.Context, m *models.Member) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Member, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type BlogRepo interface {
	List(ctx context.Context, f repository.BlogFilter) ([]models.Blog, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Blog, error)
	Insert(ctx context.Context, b *models.Blog) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Blog, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) (*models.Blog, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type ContactRepo interface {
	List(ctx context.Context, f repository.ContactFilter) ([]models.Contact, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Contact, error)
	Insert(ctx context.Context, c *models.Contact) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.Contact, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type UserRepo interface {
	List(ctx context.Context, f repository.UserFilter) ([]models.User, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByIdentifier(ctx context.Context, username, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
	Update(ctx context.Context, id bson.ObjectID, set bson.M) (*models.User, error)
	TouchLastLogin(ctx context.Context, id bson.ObjectID, at time.Time) error
	CountActiveAdmins(ctx context.Context, except bson.ObjectID) (int64, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type DashboardRepo interface {
	Count(ctx context.Context, col string, filter bson.M) (int64, error)
	Recent(ctx context.Context, col string, limit int64, fields ...string) ([]bson.M, error)
	Monthly(ctx context.Context, col string, since time.Time) ([]repository.MonthCount, error)
	GroupCount(ctx context.Context, col, field string, match bson.M) ([]repository.KeyCount, error)
}

var (
	_ EventRepo       = (*repository.EventRepository)(nil)
	_ PublicationRepo = (*repository.PublicationRepository)(nil)
	_ MemberRepo      = (*repository.MemberRepository)(nil)
	_ BlogRepo        = (*repository.BlogRepository)(nil)
	_ ContactRepo     = (*repository.ContactRepository)(nil)
	_ UserRepo        = (*repository.UserRepository)(nil)
	_ DashboardRepo   = (*repository.DashboardRepository)(nil)
)
