package services

import (
	"context"
	"fmt"
	"time"

	"absss-backend/dto"
	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"
	"absss-backend/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PublishedBlogsLimit = 10
	RecentBlogsLimit    = 5
)

type BlogService struct {
	repo BlogRepo
	now  func() time.Time
}

func NewBlogService(repo BlogRepo) *BlogService {
	return &BlogService{repo: repo, now: utils.Now}
}

func (s *BlogService) List(ctx context.Context, f repository.BlogFilter) ([]models.Blog, error) {
	return s.repo.List(ctx, f)
}

func (s *BlogService) Published(ctx context.Context) ([]models.Blog, error) {
	return s.publishedOnly(ctx, repository.BlogFilter{Limit: PublishedBlogsLimit})
}

func (s *BlogService) Recent(ctx context.Context) ([]models.Blog, error) {
	return s.publishedOnly(ctx, repository.BlogFilter{Limit: RecentBlogsLimit})
}

func (s *BlogService) ByCategory(ctx context.Context, category string) ([]models.Blog, error) {
	return s.publishedOnly(ctx, repository.BlogFilter{Category: category})
}

func (s *BlogService) publishedOnly(ctx context.Context, f repository.BlogFilter) ([]models.Blog, error) {
	published := true
	f.IsPublished = &published
	return s.repo.List(ctx, f)
}

// Get hides drafts unless includeDrafts is set.
func (s *BlogService) Get(ctx context.Context, id string, includeDrafts bool) (*models.Blog, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !b.IsPublished && !includeDrafts {
		return nil, fmt.Errorf("blog %s is a draft: %w", id, errs.ErrNotFound)
	}
	return b, nil
}

// IncrementViews counts one read of a published post and returns the new total.
func (s *BlogService) IncrementViews(ctx context.Context, id string) (int64, error) {
	b, err := s.Get(ctx, id, false)
	if err != nil {
		return 0, err
	}
	b, err = s.repo.IncrementViews(ctx, b.ID)
	if err != nil {
		return 0, err
	}
	return b.Views, nil
}

func (s *BlogService) Create(ctx context.Context, body dto.BlogCreateDTO) (*models.Blog, error) {
	body.Title = utils.Trim(body.Title)
	body.Content = utils.Trim(body.Content)
	body.Excerpt = utils.Trim(body.Excerpt)
	body.Author = utils.Trim(body.Author)
	body.Category = utils.Trim(body.Category)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}

	now := s.now()
	published := now
	if body.PublishedDate != nil && utils.Trim(*body.PublishedDate) != "" {
		t, err := parseDate("publishedDate", *body.PublishedDate)
		if err != nil {
			return nil, err
		}
		published = t
	}

	b := &models.Blog{
		ID:            bson.NewObjectID(),
		Title:         body.Title,
		Content:       body.Content,
		Excerpt:       body.Excerpt,
		Author:        body.Author,
		Category:      body.Category,
		Tags:          utils.TrimAll(body.Tags),
		ImageURL:      optionalURL(body.ImageURL),
		PublishedDate: published,
		IsPublished:   body.IsPublished != nil && *body.IsPublished,
		Views:         0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BlogService) Update(ctx context.Context, id string, body dto.BlogUpdateDTO) (*models.Blog, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	utils.TrimPtr(body.Title)
	utils.TrimPtr(body.Content)
	utils.TrimPtr(body.Excerpt)
	utils.TrimPtr(body.Author)
	utils.TrimPtr(body.Category)
	utils.TrimPtr(body.PublishedDate)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}

	p := newPatch(s.now())
	setIf(p, "title", body.Title)
	setIf(p, "content", body.Content)
	setIf(p, "excerpt", body.Excerpt)
	setIf(p, "author", body.Author)
	setIf(p, "category", body.Category)
	setIf(p, "isPublished", body.IsPublished)
	if body.Tags != nil {
		p.set["tags"] = utils.TrimAll(*body.Tags)
	}
	if body.ImageURL != nil {
		p.set["imageUrl"] = optionalURL(body.ImageURL)
	}
	p.date("publishedDate", body.PublishedDate)
	if err := p.err(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, oid, p.set)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	oid, err := utils.Oid(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
