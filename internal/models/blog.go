package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	BlogTechnology = "technology"
	BlogResearch   = "research"
	BlogEvents     = "events"
	BlogNews       = "news"
	BlogTutorial   = "tutorial"
)

var BlogCategories = []string{BlogTechnology, BlogResearch, BlogEvents, BlogNews, BlogTutorial}

type Blog struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Content       string        `bson:"content" json:"content"`
	Excerpt       string        `bson:"excerpt" json:"excerpt"`
	Author        string        `bson:"author" json:"author"`
	Category      string        `bson:"category" json:"category"`
	Tags          []string      `bson:"tags" json:"tags"`
	ImageURL      *string       `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	PublishedDate time.Time     `bson:"publishedDate" json:"publishedDate"`
	IsPublished   bool          `bson:"isPublished" json:"isPublished"`
	Views         int64         `bson:"views" json:"views"` // only ever $inc'ed

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
