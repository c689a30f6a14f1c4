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

type MemberService struct {
	repo MemberRepo
	now  func() time.Time
}

func NewMemberService(repo MemberRepo) *MemberService {
	return &MemberService{repo: repo, now: utils.Now}
}

// List orders by role then name. Email uniqueness is enforced by the store.
func (s *MemberService) List(ctx context.Context, f repository.MemberFilter) ([]models.Member, error) {
	return s.repo.List(ctx, f)
}

func (s *MemberService) Get(ctx context.Context, id string) (*models.Member, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *MemberService) Create(ctx context.Context, body dto.MemberCreateDTO) (*models.Member, error) {
	body.Name = utils.Trim(body.Name)
	body.Role = utils.Trim(body.Role)
	body.Designation = utils.Trim(body.Designation)
	body.Email = utils.NormalizeEmail(body.Email)
	body.Department = utils.Trim(body.Department)
	body.Bio = utils.Trim(body.Bio)
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}

	now := s.now()
	joined := now
	if body.JoinDate != nil && utils.Trim(*body.JoinDate) != "" {
		t, err := parseDate("joinDate", *body.JoinDate)
		if err != nil {
			return nil, err
		}
		joined = t
	}
	active := true
	if body.IsActive != nil {
		active = *body.IsActive
	}

	m := &models.Member{
		ID:          bson.NewObjectID(),
		Name:        body.Name,
		Role:        body.Role,
		Designation: body.Designation,
		Image:       optionalURL(body.Image),
		Email:       body.Email,
		Department:  body.Department,
		Bio:         body.Bio,
		IsActive:    active,
		JoinDate:    joined,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MemberService) Update(ctx context.Context, id string, body dto.MemberUpdateDTO) (*models.Member, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	utils.TrimPtr(body.Name)
	utils.TrimPtr(body.Role)
	utils.TrimPtr(body.Designation)
	utils.TrimPtr(body.Department)
	utils.TrimPtr(body.Bio)
	utils.TrimPtr(body.JoinDate)
	if body.Email != nil {
		e := utils.NormalizeEmail(*body.Email)
		body.Email = &e
	}
	if err := utils.ValidateStruct(body); err != nil {
		return nil, err
	}

	p := newPatch(s.now())
	setIf(p, "name", body.Name)
	setIf(p, "role", body.Role)
	setIf(p, "designation", body.Designation)
	setIf(p, "email", body.Email)
	setIf(p, "department", body.Department)
	setIf(p, "bio", body.Bio)
	setIf(p, "isActive", body.IsActive)
	p.date("joinDate", body.JoinDate)
	if body.Image != nil {
		p.set["image"] = optionalURL(body.Image)
	}
	if err := p.err(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, oid, p.set)
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	oid, err := utils.Oid(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
