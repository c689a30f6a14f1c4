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

type ContactService struct {
	repo ContactRepo
	now  func() time.Time
}

func NewContactService(repo ContactRepo) *ContactService {
	return &ContactService{repo: repo, now: utils.Now}
}

// Create stores a public inquiry. No token is required.
func (s *ContactService) Create(ctx context.Context, body dto.ContactCreateDTO) (*models.Contact, error) {
	body.Name = utils.Trim(body.Name)
	body.Email = utils.NormalizeEmail(body.Email)
	body.Subject = utils.Trim(body.Subject)
	body.Message = utils.Trim(body.Message)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}
	if body.Subject == "" {
		body.Subject = models.DefaultContactSubject
	}

	now := s.now()
	c := &models.Contact{
		ID:        bson.NewObjectID(),
		Name:      body.Name,
		Email:     body.Email,
		Subject:   body.Subject,
		Message:   body.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) List(ctx context.Context, f repository.ContactFilter) ([]models.Contact, error) {
	return s.repo.List(ctx, f)
}

func (s *ContactService) Get(ctx context.Context, id string) (*models.Contact, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*models.Contact, error) {
	read := true
	return s.Update(ctx, id, dto.ContactUpdateDTO{IsRead: &read})
}

func (s *ContactService) Update(ctx context.Context, id string, body dto.ContactUpdateDTO) (*models.Contact, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	p := newPatch(s.now())
	setIf(p, "isRead", body.IsRead)
	setIf(p, "responded", body.Responded)
	return s.repo.Update(ctx, oid, p.set)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	oid, err := utils.Oid(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
