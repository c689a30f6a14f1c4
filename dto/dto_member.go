package dto

type MemberCreateDTO struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Role        string  `json:"role" validate:"required,oneof=faculty student alumni"`
	Designation string  `json:"designation" validate:"required,notblank"`
	Image       *string `json:"image,omitempty"`
	Email       string  `json:"email" validate:"required,email"`
	Department  string  `json:"department" validate:"required,notblank"`
	Bio         string  `json:"bio" validate:"required,notblank"`
	IsActive    *bool   `json:"isActive,omitempty"`
	JoinDate    *string `json:"joinDate,omitempty"`
}

type MemberUpdateDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=faculty student alumni"`
	Designation *string `json:"designation,omitempty" validate:"omitempty,min=1"`
	Image       *string `json:"image,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Department  *string `json:"department,omitempty" validate:"omitempty,min=1"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,min=1"`
	IsActive    *bool   `json:"isActive,omitempty"`
	JoinDate    *string `json:"joinDate,omitempty" validate:"omitempty,min=1"`
}
