package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"absss-backend/dto"
	"absss-backend/internal/auth"
	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/utils"
)

type AuthService struct {
	users  UserRepo
	tokens *auth.TokenManager
	now    func() time.Time
}

func NewAuthService(users UserRepo, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: utils.Now}
}

// Login never tells the caller which of unknown account, deactivated
// account or wrong password occurred.
func (s *AuthService) Login(ctx context.Context, body dto.LoginRequestDTO) (dto.LoginResponseDTO, error) {
	body.Identifier = utils.Trim(body.Identifier)
	if err := utils.ValidateStruct(body); err != nil {
		return dto.LoginResponseDTO{}, err
	}

	u, err := s.users.FindByIdentifier(ctx, body.Identifier, utils.NormalizeEmail(body.Identifier))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			auth.BurnPasswordCheck(body.Password)
			return dto.LoginResponseDTO{}, errs.ErrInvalidCredentials
		}
		return dto.LoginResponseDTO{}, err
	}
	if !auth.CheckPassword(u.PasswordHash, body.Password) || !u.IsActive {
		return dto.LoginResponseDTO{}, errs.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.users.TouchLastLogin(ctx, u.ID, now); err != nil {
		return dto.LoginResponseDTO{}, err
	}
	u.LastLogin = &now

	token, exp, err := s.tokens.Issue(u)
	if err != nil {
		return dto.LoginResponseDTO{}, err
	}
	return dto.LoginResponseDTO{Token: token, ExpiresAt: exp, User: dto.NewUserProfile(u)}, nil
}

// account loads the caller behind a verified token. A token that outlived
// its account is treated as invalid.
func (s *AuthService) account(ctx context.Context, uid string) (*models.User, error) {
	oid, err := utils.Oid(uid)
	if err != nil {
		return nil, errs.ErrTokenInvalid
	}
	u, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, fmt.Errorf("account %s: %w", uid, errs.ErrTokenInvalid)
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, fmt.Errorf("account %s is deactivated: %w", uid, errs.ErrForbidden)
	}
	return u, nil
}

func (s *AuthService) GetProfile(ctx context.Context, uid string) (dto.UserProfileDTO, error) {
	u, err := s.account(ctx, uid)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	return dto.NewUserProfile(u), nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, uid string, body dto.ProfileUpdateDTO) (dto.UserProfileDTO, error) {
	u, err := s.account(ctx, uid)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	utils.TrimPtr(body.Username)
	if body.Email != nil {
		e := utils.NormalizeEmail(*body.Email)
		body.Email = &e
	}
	if err := utils.ValidateStruct(body); err != nil {
		return dto.UserProfileDTO{}, err
	}

	p := newPatch(s.now())
	setIf(p, "username", body.Username)
	setIf(p, "email", body.Email)
	updated, err := s.users.Update(ctx, u.ID, p.set)
	if err != nil {
		return dto.UserProfileDTO{}, err
	}
	return dto.NewUserProfile(updated), nil
}

func (s *AuthService) ChangePassword(ctx context.Context, uid string, body dto.ChangePasswordDTO) error {
	u, err := s.account(ctx, uid)
	if err != nil {
		return err
	}
	if err := utils.ValidateStruct(body); err != nil {
		return err
	}
	if !auth.CheckPassword(u.PasswordHash, body.CurrentPassword) {
		return errs.NewValidationError(errs.Field("currentPassword", "is incorrect"))
	}

	hash, err := auth.HashPassword(body.NewPassword)
	if err != nil {
		return err
	}
	p := newPatch(s.now())
	p.set["password"] = hash
	_, err = s.users.Update(ctx, u.ID, p.set)
	return err
}
