package dto

type PublicationCreateDTO struct {
	Title         string   `json:"title" validate:"required,notblank,max=300"`
	Authors       []string `json:"authors" validate:"required,min=1,dive,required,notblank"`
	Abstract      string   `json:"abstract" validate:"required,notblank"`
	PdfURL        string   `json:"pdfUrl" validate:"required,notblank"`
	Category      string   `json:"category" validate:"required,oneof=research review case-study blog"`
	PublishedDate string   `json:"publishedDate" validate:"required,notblank"`
	Journal       string   `json:"journal" validate:"required,notblank"`
}

type PublicationUpdateDTO struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Authors       *[]string `json:"authors,omitempty" validate:"omitempty,min=1,dive,required,notblank"`
	Abstract      *string   `json:"abstract,omitempty" validate:"omitempty,min=1"`
	PdfURL        *string   `json:"pdfUrl,omitempty" validate:"omitempty,min=1"`
	Category      *string   `json:"category,omitempty" validate:"omitempty,oneof=research review case-study blog"`
	PublishedDate *string   `json:"publishedDate,omitempty" validate:"omitempty,min=1"`
	Journal       *string   `json:"journal,omitempty" validate:"omitempty,min=1"`
}
