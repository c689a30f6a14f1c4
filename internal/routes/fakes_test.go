package routes

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// memRepo is a map backed collection whose List applies match to every
// document.
type memRepo[T any, F any] struct {
	mu    sync.Mutex
	docs  map[bson.ObjectID]*T
	idOf  func(*T) bson.ObjectID
	match func(*T, F) bool
}

func newMemRepo[T any, F any](idOf func(*T) bson.ObjectID, match func(*T, F) bool) *memRepo[T, F] {
	return &memRepo[T, F]{docs: map[bson.ObjectID]*T{}, idOf: idOf, match: match}
}

func roundTrip[T any](in any) (*T, error) {
	raw, err := bson.Marshal(in)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *memRepo[T, F]) List(_ context.Context, f F) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []T{}
	for _, d := range m.docs {
		if m.match == nil || m.match(d, f) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *memRepo[T, F]) FindByID(_ context.Context, id bson.ObjectID) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (m *memRepo[T, F]) Insert(_ context.Context, doc *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *doc
	m.docs[m.idOf(doc)] = &cp
	return nil
}

func (m *memRepo[T, F]) Update(_ context.Context, id bson.ObjectID, set bson.M) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	doc, err := roundTrip[bson.M](cur)
	if err != nil {
		return nil, err
	}
	for k, v := range set {
		(*doc)[k] = v
	}
	next, err := roundTrip[T](*doc)
	if err != nil {
		return nil, err
	}
	m.docs[id] = next
	cp := *next
	return &cp, nil
}

func (m *memRepo[T, F]) Delete(_ context.Context, id bson.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	delete(m.docs, id)
	return nil
}

func newEventRepo() *memRepo[models.Event, repository.EventFilter] {
	return newMemRepo(func(e *models.Event) bson.ObjectID { return e.ID },
		func(e *models.Event, f repository.EventFilter) bool {
			if f.Category != "" && e.Category != f.Category {
				return false
			}
			if f.Upcoming != nil && e.Upcoming(f.Now) != *f.Upcoming {
				return false
			}
			return true
		})
}

func newMemberRepo() *memRepo[models.Member, repository.MemberFilter] {
	return newMemRepo(func(m *models.Member) bson.ObjectID { return m.ID },
		func(m *models.Member, f repository.MemberFilter) bool {
			if f.Role != "" && m.Role != f.Role {
				return false
			}
			return f.IsActive == nil || m.IsActive == *f.IsActive
		})
}

func newContactRepo() *memRepo[models.Contact, repository.ContactFilter] {
	return newMemRepo(func(c *models.Contact) bson.ObjectID { return c.ID },
		func(c *models.Contact, f repository.ContactFilter) bool {
			return f.IsRead == nil || c.IsRead == *f.IsRead
		})
}

type blogRepo struct {
	*memRepo[models.Blog, repository.BlogFilter]
}

func newBlogRepo() *blogRepo {
	return &blogRepo{newMemRepo(func(b *models.Blog) bson.ObjectID { return b.ID },
		func(b *models.Blog, f repository.BlogFilter) bool {
			if f.Category != "" && b.Category != f.Category {
				return false
			}
			return f.IsPublished == nil || b.IsPublished == *f.IsPublished
		})}
}

func (r *blogRepo) IncrementViews(ctx context.Context, id bson.ObjectID) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
	}
	b.Views++
	cp := *b
	return &cp, nil
}

type userRepo struct {
	*memRepo[models.User, repository.UserFilter]
}

func newUserRepo() *userRepo {
	return &userRepo{newMemRepo[models.User, repository.UserFilter](func(u *models.User) bson.ObjectID { return u.ID }, nil)}
}

func (r *userRepo) FindByIdentifier(_ context.Context, username, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.docs {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("mem: %w", errs.ErrNotFound)
}

func (r *userRepo) TouchLastLogin(_ context.Context, id bson.ObjectID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.docs[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (r *userRepo) CountActiveAdmins(_ context.Context, except bson.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, u := range r.docs {
		if id != except && u.IsActive && u.Role == models.RoleAdmin {
			n++
		}
	}
	return n, nil
}

// memMedia records uploaded objects.
type memMedia struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *memMedia) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[key] = b
	return nil
}

func (s *memMedia) URL(key string) string {
	return "https://cdn.example.org/" + strings.TrimLeft(key, "/")
}

func (s *memMedia) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}
