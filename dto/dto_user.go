package dto

import (
	"time"

	"absss-backend/internal/models"
)

// UserProfileDTO is the password-free view of an account.
type UserProfileDTO struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	IsActive    bool       `json:"isActive"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewUserProfile(u *models.User) UserProfileDTO {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return UserProfileDTO{
		ID:          u.ID.Hex(),
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: perms,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type UserCreateDTO struct {
	Username    string   `json:"username" validate:"required,notblank,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role,omitempty" validate:"omitempty,oneof=admin moderator editor"`
	Permissions []string `json:"permissions,omitempty" validate:"omitempty,dive,oneof=events publications members blogs contacts users analytics uploads all"`
}

// UserUpdateDTO never carries a password; accounts change theirs through the profile endpoint.
type UserUpdateDTO struct {
	Username    *string   `json:"username,omitempty" validate:"omitempty,min=1,max=50"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,email"`
	Role        *string   `json:"role,omitempty" validate:"omitempty,oneof=admin moderator editor"`
	Permissions *[]string `json:"permissions,omitempty" validate:"omitempty,dive,oneof=events publications members blogs contacts users analytics uploads all"`
	IsActive    *bool     `json:"isActive,omitempty"`
}
