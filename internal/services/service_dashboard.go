package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"absss-backend/dto"
	"absss-backend/internal/errs"
	"absss-backend/internal/repository"
	"absss-backend/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit = 5
	monthlyWindow       = 6
	dashboardFanout     = 6
)

// DashboardService assembles the admin overview. Each section is queried
// independently; a failed section is logged, left at zero and reported in
// Degraded instead of failing the whole response.
type DashboardService struct {
	repo DashboardRepo
	log  *zap.Logger
	now  func() time.Time
}

func NewDashboardService(repo DashboardRepo, log *zap.Logger) *DashboardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardService{repo: repo, log: log, now: utils.Now}
}

type section struct {
	name string
	run  func(ctx context.Context) error
}

func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardDTO, error) {
	now := s.now()
	out := &dto.DashboardDTO{
		RecentActivities: dto.RecentActivitiesDTO{
			Events: []dto.ActivityDTO{}, Publications: []dto.ActivityDTO{}, Blogs: []dto.ActivityDTO{},
			Contacts: []dto.ActivityDTO{}, Members: []dto.ActivityDTO{},
		},
		Analytics: dto.AnalyticsDTO{
			MonthlyEvents: emptyMonths(now), MonthlyPublications: emptyMonths(now),
			EventCategories: []dto.KeyCountDTO{}, PublicationCategories: []dto.KeyCountDTO{},
			BlogCategories: []dto.KeyCountDTO{}, MemberRoles: []dto.KeyCountDTO{},
		},
		Degraded: []string{},
	}
	st := &out.Stats
	ra := &out.RecentActivities
	an := &out.Analytics
	active := bson.M{"isActive": true}

	sections := []section{
		{"stats.events", func(ctx context.Context) error {
			total, err := s.repo.Count(ctx, repository.EventsCollection, nil)
			if err != nil {
				return err
			}
			upcoming, err := s.repo.Count(ctx, repository.EventsCollection, bson.M{"date": bson.M{"$gte": now}})
			if err != nil {
				return err
			}
			st.TotalEvents, st.UpcomingEvents = total, upcoming
			return nil
		}},
		{"stats.publications", func(ctx context.Context) error {
			n, err := s.repo.Count(ctx, repository.PublicationsCollection, nil)
			st.TotalPublications = n
			return err
		}},
		{"stats.blogs", func(ctx context.Context) error {
			total, err := s.repo.Count(ctx, repository.BlogsCollection, nil)
			if err != nil {
				return err
			}
			published, err := s.repo.Count(ctx, repository.BlogsCollection, bson.M{"isPublished": true})
			if err != nil {
				return err
			}
			st.TotalBlogs, st.PublishedBlogs, st.DraftBlogs = total, published, total-published
			return nil
		}},
		{"stats.members", func(ctx context.Context) error {
			n, err := s.repo.Count(ctx, repository.MembersCollection, active)
			st.TotalMembers = n
			return err
		}},
		{"stats.contacts", func(ctx context.Context) error {
			total, err := s.repo.Count(ctx, repository.ContactsCollection, nil)
			if err != nil {
				return err
			}
			unread, err := s.repo.Count(ctx, repository.ContactsCollection, bson.M{"isRead": false})
			if err != nil {
				return err
			}
			st.TotalContacts, st.UnreadContacts = total, unread
			return nil
		}},
		{"stats.users", func(ctx context.Context) error {
			n, err := s.repo.Count(ctx, repository.UsersCollection, active)
			st.TotalUsers = n
			return err
		}},

		{"recentActivities.events", s.recent(repository.EventsCollection, "title", "category", &ra.Events)},
		{"recentActivities.publications", s.recent(repository.PublicationsCollection, "title", "journal", &ra.Publications)},
		{"recentActivities.blogs", s.recent(repository.BlogsCollection, "title", "author", &ra.Blogs)},
		{"recentActivities.contacts", s.recent(repository.ContactsCollection, "name", "subject", &ra.Contacts)},
		{"recentActivities.members", s.recent(repository.MembersCollection, "name", "role", &ra.Members)},

		{"analytics.monthlyEvents", s.monthly(repository.EventsCollection, now, &an.MonthlyEvents)},
		{"analytics.monthlyPublications", s.monthly(repository.PublicationsCollection, now, &an.MonthlyPublications)},
		{"analytics.eventCategories", s.grouped(repository.EventsCollection, "category", nil, &an.EventCategories)},
		{"analytics.publicationCategories", s.grouped(repository.PublicationsCollection, "category", nil, &an.PublicationCategories)},
		{"analytics.blogCategories", s.grouped(repository.BlogsCollection, "category", nil, &an.BlogCategories)},
		{"analytics.memberRoles", s.grouped(repository.MembersCollection, "role", active, &an.MemberRoles)},
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dashboardFanout)
	for _, sec := range sections {
		g.Go(func() error {
			if err := sec.run(gctx); err != nil {
				s.log.Warn("dashboard section degraded", zap.String("section", sec.name), zap.Error(err))
				mu.Lock()
				out.Degraded = append(out.Degraded, sec.name)
				failures = append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) == len(sections) {
		return nil, fmt.Errorf("dashboard: every section failed: %w", errs.ErrStorageUnavailable)
	}
	sort.Strings(out.Degraded)
	return out, nil
}

// Sections write only into their own destination, so no locking is needed
// on the result itself.

func (s *DashboardService) recent(col, titleKey, subtitleKey string, dst *[]dto.ActivityDTO) func(context.Context) error {
	return func(ctx context.Context) error {
		rows, err := s.repo.Recent(ctx, col, recentActivityLimit, titleKey, subtitleKey)
		if err != nil {
			return err
		}
		items := make([]dto.ActivityDTO, 0, len(rows))
		for _, row := range rows {
			a := dto.ActivityDTO{
				Title:    stringField(row, titleKey),
				Subtitle: stringField(row, subtitleKey),
			}
			if id, ok := row["_id"].(bson.ObjectID); ok {
				a.ID = id.Hex()
			}
			if t, ok := utils.ExtractTime(row, "createdAt"); ok {
				a.CreatedAt = t
			}
			items = append(items, a)
		}
		*dst = items
		return nil
	}
}

func (s *DashboardService) monthly(col string, now time.Time, dst *[]dto.MonthCountDTO) func(context.Context) error {
	return func(ctx context.Context) error {
		months := emptyMonths(now)
		first := time.Date(months[0].Year, time.Month(months[0].Month), 1, 0, 0, 0, 0, time.UTC)
		rows, err := s.repo.Monthly(ctx, col, first)
		if err != nil {
			return err
		}
		for _, r := range rows {
			for i := range months {
				if months[i].Year == r.Year && months[i].Month == r.Month {
					months[i].Count = r.Count
				}
			}
		}
		*dst = months
		return nil
	}
}

func (s *DashboardService) grouped(col, field string, match bson.M, dst *[]dto.KeyCountDTO) func(context.Context) error {
	return func(ctx context.Context) error {
		rows, err := s.repo.GroupCount(ctx, col, field, match)
		if err != nil {
			return err
		}
		items := make([]dto.KeyCountDTO, 0, len(rows))
		for _, r := range rows {
			items = append(items, dto.KeyCountDTO{Key: r.Key, Count: r.Count})
		}
		*dst = items
		return nil
	}
}

// emptyMonths lists the current month and the five before it, oldest first.
func emptyMonths(now time.Time) []dto.MonthCountDTO {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthlyWindow - 1), 0)
	out := make([]dto.MonthCountDTO, 0, monthlyWindow)
	for i := 0; i < monthlyWindow; i++ {
		m := start.AddDate(0, i, 0)
		out = append(out, dto.MonthCountDTO{Year: m.Year(), Month: int(m.Month())})
	}
	return out
}

func stringField(row bson.M, key string) string {
	s, _ := row[key].(string)
	return s
}
