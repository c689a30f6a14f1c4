package dto

type ContactCreateDTO struct {
	Name    string `json:"name" validate:"required,notblank"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message" validate:"required,notblank"`
}

type ContactUpdateDTO struct {
	IsRead    *bool `json:"isRead,omitempty"`
	Responded *bool `json:"responded,omitempty"`
}
