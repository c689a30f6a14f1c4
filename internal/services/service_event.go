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

type EventService struct {
	repo EventRepo
	now  func() time.Time
}

func NewEventService(repo EventRepo) *EventService {
	return &EventService{repo: repo, now: utils.Now}
}

// decorate derives isUpcoming against the current instant.
func (s *EventService) decorate(now time.Time, events ...*models.Event) {
	for _, e := range events {
		e.IsUpcoming = e.Upcoming(now)
	}
}

func (s *EventService) List(ctx context.Context, f repository.EventFilter) ([]models.Event, error) {
	now := s.now()
	f.Now = now
	events, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range events {
		s.decorate(now, &events[i])
	}
	return events, nil
}

func (s *EventService) Upcoming(ctx context.Context) ([]models.Event, error) {
	up := true
	return s.List(ctx, repository.EventFilter{Upcoming: &up})
}

func (s *EventService) Past(ctx context.Context) ([]models.Event, error) {
	up := false
	return s.List(ctx, repository.EventFilter{Upcoming: &up})
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	e, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	s.decorate(s.now(), e)
	return e, nil
}

func (s *EventService) Create(ctx context.Context, body dto.EventCreateDTO) (*models.Event, error) {
	body.Title = utils.Trim(body.Title)
	body.Description = utils.Trim(body.Description)
	body.Location = utils.Trim(body.Location)
	body.Category = utils.Trim(body.Category)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}
	date, err := parseDate("date", body.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	e := &models.Event{
		ID:          bson.NewObjectID(),
		Title:       body.Title,
		Description: body.Description,
		Date:        date,
		Image:       optionalURL(body.Image),
		Category:    body.Category,
		Location:    body.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	s.decorate(now, e)
	return e, nil
}

func (s *EventService) Update(ctx context.Context, id string, body dto.EventUpdateDTO) (*models.Event, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	utils.TrimPtr(body.Title)
	utils.TrimPtr(body.Description)
	utils.TrimPtr(body.Location)
	utils.TrimPtr(body.Date)
	utils.TrimPtr(body.Category)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}

	now := s.now()
	p := newPatch(now)
	setIf(p, "title", body.Title)
	setIf(p, "description", body.Description)
	setIf(p, "category", body.Category)
	setIf(p, "location", body.Location)
	p.date("date", body.Date)
	if body.Image != nil {
		p.set["image"] = optionalURL(body.Image)
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	e, err := s.repo.Update(ctx, oid, p.set)
	if err != nil {
		return nil, err
	}
	s.decorate(now, e)
	return e, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	oid, err := utils.Oid(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
