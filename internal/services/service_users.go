package services

import (
	"context"
	"fmt"
	"time"

	"absss-backend/dto"
	"absss-backend/internal/auth"
	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"
	"absss-backend/internal/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserService manages administrative accounts. Every read returns the
// password-free profile.
type UserService struct {
	repo UserRepo
	now  func() time.Time
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo, now: utils.Now}
}

func (s *UserService) List(ctx context.Context, f repository.UserFilter) ([]dto.UserProfileDTO, error) {
	users, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserProfileDTO, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserProfile(&users[i]))
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (dto.UserProfileDTO, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	return dto.NewUserProfile(u), nil
}

func (s *UserService) find(ctx context.Context, id string) (*models.User, error) {
	oid, err := utils.Oid(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *UserService) Create(ctx context.Context, body dto.UserCreateDTO) (dto.UserProfileDTO, error) {
	body.Username = utils.Trim(body.Username)
	body.Email = utils.NormalizeEmail(body.Email)
	body.Role = utils.Trim(body.Role)
	if err := utils.ValidateStruct(body); err != nil {
		return dto.UserProfileDTO{}, err
	}
	if body.Role == "" {
		body.Role = models.RoleEditor
	}
	perms := body.Permissions
	if perms == nil {
		perms = append([]string(nil), models.DefaultPermissions...)
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}

	now := s.now()
	u := &models.User{
		ID:           bson.NewObjectID(),
		Username:     body.Username,
		Email:        body.Email,
		PasswordHash: hash,
		Role:         body.Role,
		Permissions:  perms,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return dto.UserProfileDTO{}, err
	}
	return dto.NewUserProfile(u), nil
}

func (s *UserService) Update(ctx context.Context, id string, body dto.UserUpdateDTO) (dto.UserProfileDTO, error) {
	target, err := s.find(ctx, id)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	utils.TrimPtr(body.Username)
	utils.TrimPtr(body.Role)
	if body.Email != nil {
		e := utils.NormalizeEmail(*body.Email)
		body.Email = &e
	}
	if err := utils.ValidateStruct(body); err != nil {
		return dto.UserProfileDTO{}, err
	}

	losesAdmin := (body.Role != nil && *body.Role != models.RoleAdmin) ||
		(body.IsActive != nil && !*body.IsActive)
	if losesAdmin {
		if err := s.guardLastAdmin(ctx, target); err != nil {
			return dto.UserProfileDTO{}, err
		}
	}

	p := newPatch(s.now())
	setIf(p, "username", body.Username)
	setIf(p, "email", body.Email)
	setIf(p, "role", body.Role)
	setIf(p, "permissions", body.Permissions)
	setIf(p, "isActive", body.IsActive)

	u, err := s.repo.Update(ctx, target.ID, p.set)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	return dto.NewUserProfile(u), nil
}

// Delete refuses to remove the caller's own account or the last admin.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	target, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if target.ID.Hex() == actorID {
		return fmt.Errorf("cannot delete your own account: %w", errs.ErrConflict)
	}
	if err := s.guardLastAdmin(ctx, target); err != nil {
		return err
	}
	return s.repo.Delete(ctx, target.ID)
}

// ToggleActive flips isActive. Accounts cannot deactivate themselves.
func (s *UserService) ToggleActive(ctx context.Context, actorID, id string) (dto.UserProfileDTO, error) {
	target, err := s.find(ctx, id)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	if target.ID.Hex() == actorID {
		return dto.UserProfileDTO{}, fmt.Errorf("cannot deactivate your own account: %w", errs.ErrConflict)
	}
	if target.IsActive {
		if err := s.guardLastAdmin(ctx, target); err != nil {
			return dto.UserProfileDTO{}, err
		}
	}

	p := newPatch(s.now())
	p.set["isActive"] = !target.IsActive
	u, err := s.repo.Update(ctx, target.ID, p.set)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	return dto.NewUserProfile(u), nil
}

// guardLastAdmin fails unless another active admin would remain once target
// is removed or deactivated. Inactive admins are guarded too.
func (s *UserService) guardLastAdmin(ctx context.Context, target *models.User) error {
	if target.Role != models.RoleAdmin {
		return nil
	}
	others, err := s.repo.CountActiveAdmins(ctx, target.ID)
	if err != nil {
		return err
	}
	if others == 0 {
		return fmt.Errorf("%s is the last active admin: %w", target.Username, errs.ErrConflict)
	}
	return nil
}
