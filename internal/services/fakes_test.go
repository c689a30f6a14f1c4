package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// memStore is an in-memory collection with the same error contract as the
// mongo repositories.
type memStore[T any] struct {
	mu     sync.Mutex
	docs   map[bson.ObjectID]*T
	idOf   func(*T) bson.ObjectID
	unique func(a, b *T) string
	fail   error
}

func newMemStore[T any](idOf func(*T) bson.ObjectID) *memStore[T] {
	return &memStore[T]{docs: map[bson.ObjectID]*T{}, idOf: idOf}
}

func clone[T any](doc *T) *T {
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

func (m *memStore[T]) conflict(doc *T) error {
	if m.unique == nil {
		return nil
	}
	for id, other := range m.docs {
		if id == m.idOf(doc) {
			continue
		}
		if field := m.unique(doc, other); field != "" {
			return errs.NewValidationError(errs.Field(field, "is already in use"))
		}
	}
	return nil
}

func (m *memStore[T]) all(keep func(*T) bool) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]T, 0, len(m.docs))
	for _, d := range m.docs {
		if keep == nil || keep(d) {
			out = append(out, *clone(d))
		}
	}
	return out, nil
}

func (m *memStore[T]) FindByID(_ context.Context, id bson.ObjectID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	d, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	return clone(d), nil
}

func (m *memStore[T]) Insert(_ context.Context, doc *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if err := m.conflict(doc); err != nil {
		return err
	}
	m.docs[m.idOf(doc)] = clone(doc)
	return nil
}

func (m *memStore[T]) Update(_ context.Context, id bson.ObjectID, set bson.M) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	cur, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
	}

	raw, err := bson.Marshal(cur)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range set {
		doc[k] = v
	}
	raw, err = bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var next T
	if err := bson.Unmarshal(raw, &next); err != nil {
		return nil, err
	}
	if err := m.conflict(&next); err != nil {
		return nil, err
	}
	m.docs[id] = &next
	return clone(&next), nil
}

func (m *memStore[T]) Delete(_ context.Context, id bson.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.docs[id]; !ok {
		return fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	delete(m.docs, id)
	return nil
}

func limit[T any](in []T, n int64) []T {
	if n > 0 && int64(len(in)) > n {
		return in[:n]
	}
	return in
}

// Events

type fakeEventRepo struct{ *memStore[models.Event] }

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{newMemStore(func(e *models.Event) bson.ObjectID { return e.ID })}
}

func (r *fakeEventRepo) List(_ context.Context, f repository.EventFilter) ([]models.Event, error) {
	out, err := r.all(func(e *models.Event) bool {
		if f.Category != "" && e.Category != f.Category {
			return false
		}
		if f.Upcoming != nil && *f.Upcoming == e.Date.Before(f.Now) {
			return false
		}
		return true
	})
	slices.SortFunc(out, func(a, b models.Event) int { return b.Date.Compare(a.Date) })
	return limit(out, f.Limit), err
}

// Publications

type fakePublicationRepo struct{ *memStore[models.Publication] }

func newFakePublicationRepo() *fakePublicationRepo {
	return &fakePublicationRepo{newMemStore(func(p *models.Publication) bson.ObjectID { return p.ID })}
}

func (r *fakePublicationRepo) List(_ context.Context, f repository.PublicationFilter) ([]models.Publication, error) {
	out, err := r.all(func(p *models.Publication) bool {
		return f.Category == "" || p.Category == f.Category
	})
	slices.SortFunc(out, func(a, b models.Publication) int { return b.PublishedDate.Compare(a.PublishedDate) })
	return limit(out, f.Limit), err
}

// Members

type fakeMemberRepo struct{ *memStore[models.Member] }

func newFakeMemberRepo() *fakeMemberRepo {
	s := newMemStore(func(m *models.Member) bson.ObjectID { return m.ID })
	s.unique = func(a, b *models.Member) string {
		if a.Email == b.Email {
			return "email"
		}
		return ""
	}
	return &fakeMemberRepo{s}
}

func (r *fakeMemberRepo) List(_ context.Context, f repository.MemberFilter) ([]models.Member, error) {
	out, err := r.all(func(m *models.Member) bool {
		if f.Role != "" && m.Role != f.Role {
			return false
		}
		return f.IsActive == nil || m.IsActive == *f.IsActive
	})
	slices.SortFunc(out, func(a, b models.Member) int {
		return cmp.Or(cmp.Compare(a.Role, b.Role), cmp.Compare(a.Name, b.Name))
	})
	return out, err
}

// Blogs

type fakeBlogRepo struct{ *memStore[models.Blog] }

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{newMemStore(func(b *models.Blog) bson.ObjectID { return b.ID })}
}

func (r *fakeBlogRepo) List(_ context.Context, f repository.BlogFilter) ([]models.Blog, error) {
	out, err := r.all(func(b *models.Blog) bool {
		if f.Category != "" && b.Category != f.Category {
			return false
		}
		if f.IsPublished != nil && b.IsPublished != *f.IsPublished {
			return false
		}
		return f.Tag == "" || slices.Contains(b.Tags, f.Tag)
	})
	slices.SortFunc(out, func(a, b models.Blog) int { return b.PublishedDate.Compare(a.PublishedDate) })
	return limit(out, f.Limit), err
}

func (r *fakeBlogRepo) IncrementViews(_ context.Context, id bson.ObjectID) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	b.Views++
	return clone(b), nil
}

// Contacts

type fakeContactRepo struct{ *memStore[models.Contact] }

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{newMemStore(func(c *models.Contact) bson.ObjectID { return c.ID })}
}

func (r *fakeContactRepo) List(_ context.Context, f repository.ContactFilter) ([]models.Contact, error) {
	out, err := r.all(func(c *models.Contact) bool {
		return f.IsRead == nil || c.IsRead == *f.IsRead
	})
	slices.SortFunc(out, func(a, b models.Contact) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, err
}

// Users

type fakeUserRepo struct{ *memStore[models.User] }

func newFakeUserRepo() *fakeUserRepo {
	s := newMemStore(func(u *models.User) bson.ObjectID { return u.ID })
	s.unique = func(a, b *models.User) string {
		switch {
		case a.Username == b.Username:
			return "username"
		case a.Email == b.Email:
			return "email"
		}
		return ""
	}
	return &fakeUserRepo{s}
}

func (r *fakeUserRepo) List(_ context.Context, f repository.UserFilter) ([]models.User, error) {
	out, err := r.all(func(u *models.User) bool {
		if f.Role != "" && u.Role != f.Role {
			return false
		}
		return f.IsActive == nil || u.IsActive == *f.IsActive
	})
	slices.SortFunc(out, func(a, b models.User) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, err
}

func (r *fakeUserRepo) FindByIdentifier(_ context.Context, username, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.docs {
		if u.Username == username || u.Email == email {
			return clone(u), nil
		}
	}
	return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
}

func (r *fakeUserRepo) TouchLastLogin(ctx context.Context, id bson.ObjectID, at time.Time) error {
	_, err := r.Update(ctx, id, bson.M{"lastLogin": at})
	return err
}

func (r *fakeUserRepo) CountActiveAdmins(_ context.Context, except bson.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, u := range r.docs {
		if id != except && u.Role == models.RoleAdmin && u.IsActive {
			n++
		}
	}
	return n, nil
}
