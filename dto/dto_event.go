package dto

// Dates are accepted as RFC3339 timestamps or bare YYYY-MM-DD strings.

type EventCreateDTO struct {
	Title       string  `json:"title" validate:"required,notblank,max=200"`
	Description string  `json:"description" validate:"required,notblank"`
	Date        string  `json:"date" validate:"required,notblank"`
	Image       *string `json:"image,omitempty"`
	Category    string  `json:"category" validate:"required,oneof=conference workshop seminar lecture competition"`
	Location    string  `json:"location" validate:"required,notblank"`
}

type EventUpdateDTO struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Date        *string `json:"date,omitempty" validate:"omitempty,min=1"`
	Image       *string `json:"image,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,oneof=conference workshop seminar lecture competition"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1"`
}
