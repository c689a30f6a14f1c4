package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultContactSubject = "General Inquiry"

type Contact struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	IsRead    bool          `bson:"isRead" json:"isRead"`
	Responded bool          `bson:"responded" json:"responded"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
