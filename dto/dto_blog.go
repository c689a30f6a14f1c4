package dto

type BlogCreateDTO struct {
	Title         string   `json:"title" validate:"required,notblank,max=200"`
	Content       string   `json:"content" validate:"required,notblank"`
	Excerpt       string   `json:"excerpt" validate:"required,notblank,max=300"`
	Author        string   `json:"author" validate:"required,notblank"`
	Category      string   `json:"category" validate:"required,oneof=technology research events news tutorial"`
	Tags          []string `json:"tags,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	PublishedDate *string  `json:"publishedDate,omitempty"`
	IsPublished   *bool    `json:"isPublished,omitempty"`
}

// BlogUpdateDTO has no views field: the counter only moves through the view endpoint.
type BlogUpdateDTO struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content       *string   `json:"content,omitempty" validate:"omitempty,min=1"`
	Excerpt       *string   `json:"excerpt,omitempty" validate:"omitempty,min=1,max=300"`
	Author        *string   `json:"author,omitempty" validate:"omitempty,min=1"`
	Category      *string   `json:"category,omitempty" validate:"omitempty,oneof=technology research events news tutorial"`
	Tags          *[]string `json:"tags,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	PublishedDate *string   `json:"publishedDate,omitempty" validate:"omitempty,min=1"`
	IsPublished   *bool     `json:"isPublished,omitempty"`
}

type BlogViewsDTO struct {
	ID    string `json:"id"`
	Views int64  `json:"views"`
}
