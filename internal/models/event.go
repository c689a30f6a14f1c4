package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EventConference  = "conference"
	EventWorkshop    = "workshop"
	EventSeminar     = "seminar"
	EventLecture     = "lecture"
	EventCompetition = "competition"
)

var EventCategories = []string{EventConference, EventWorkshop, EventSeminar, EventLecture, EventCompetition}

type Event struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Date        time.Time     `bson:"date" json:"date"`
	Image       *string       `bson:"image,omitempty" json:"image,omitempty"`
	Category    string        `bson:"category" json:"category"`
	Location    string        `bson:"location" json:"location"`

	// IsUpcoming is derived from Date on every read, never stored.
	IsUpcoming bool `bson:"-" json:"isUpcoming"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Upcoming reports whether the event starts at or after now.
func (e *Event) Upcoming(now time.Time) bool {
	return !e.Date.Before(now)
}
