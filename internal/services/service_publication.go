package services

import (
	"context"
	"time"

	"absss-backend/dto"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"
	"absss-backend/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RecentPublicationsLimit is the size of the public "recent" listing.
const RecentPublicationsLimit = 6

type PublicationService struct {
	repo PublicationRepo
	now  func() time.Time
}

func NewPublicationService(repo PublicationRepo) *PublicationService {
	return &PublicationService{repo: repo, now: utils.Now}
}

func (s *PublicationService) List(ctx context.Context, f repository.PublicationFilter) ([]models.Publication, error) {
	return s.repo.List(ctx, f)
}

func (s *PublicationService) Recent(ctx context.Context, limit int64) ([]models.Publication, error) {
	if limit <= 0 {
		limit = RecentPublicationsLimit
	}
	return s.repo.List(ctx, repository.PublicationFilter{Limit: limit})
}

func (s *PublicationService) Get(ctx context.Context, id string) (*models.Publication, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *PublicationService) Create(ctx context.Context, body dto.PublicationCreateDTO) (*models.Publication, error) {
	body.Title = utils.Trim(body.Title)
	body.Abstract = utils.Trim(body.Abstract)
	body.PdfURL = utils.Trim(body.PdfURL)
	body.Journal = utils.Trim(body.Journal)
	body.Category = utils.Trim(body.Category)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}
	published, err := parseDate("publishedDate", body.PublishedDate)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Publication{
		ID:            bson.NewObjectID(),
		Title:         body.Title,
		Authors:       utils.TrimAll(body.Authors),
		Abstract:      body.Abstract,
		PdfURL:        body.PdfURL,
		Category:      body.Category,
		PublishedDate: published,
		Journal:       body.Journal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PublicationService) Update(ctx context.Context, id string, body dto.PublicationUpdateDTO) (*models.Publication, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	utils.TrimPtr(body.Title)
	utils.TrimPtr(body.Abstract)
	utils.TrimPtr(body.PdfURL)
	utils.TrimPtr(body.Journal)
	utils.TrimPtr(body.Category)
	utils.TrimPtr(body.PublishedDate)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}

	p := newPatch(s.now())
	setIf(p, "title", body.Title)
	setIf(p, "abstract", body.Abstract)
	setIf(p, "pdfUrl", body.PdfURL)
	setIf(p, "category", body.Category)
	setIf(p, "journal", body.Journal)
	if body.Authors != nil {
		p.set["authors"] = utils.TrimAll(*body.Authors)
	}
	p.date("publishedDate", body.PublishedDate)
	if err := p.err(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, oid, p.set)
}

func (s *PublicationService) Delete(ctx context.Context, id string) error {
	oid, err := utils.Oid(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
