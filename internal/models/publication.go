package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PublicationResearch  = "research"
	PublicationReview    = "review"
	PublicationCaseStudy = "case-study"
	PublicationBlog      = "blog"
)

var PublicationCategories = []string{PublicationResearch, PublicationReview, PublicationCaseStudy, PublicationBlog}

type Publication struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Authors       []string      `bson:"authors" json:"authors"`
	Abstract      string        `bson:"abstract" json:"abstract"`
	PdfURL        string        `bson:"pdfUrl" json:"pdfUrl"`
	Category      string        `bson:"category" json:"category"`
	PublishedDate time.Time     `bson:"publishedDate" json:"publishedDate"`
	Journal       string        `bson:"journal" json:"journal"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
