package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	MemberFaculty = "faculty"
	MemberStudent = "student"
	MemberAlumni  = "alumni"
)

var MemberRoles = []string{MemberFaculty, MemberStudent, MemberAlumni}

type Member struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Role        string        `bson:"role" json:"role"`
	Designation string        `bson:"designation" json:"designation"`
	Image       *string       `bson:"image,omitempty" json:"image,omitempty"`
	Email       string        `bson:"email" json:"email"` // unique, lower-cased
	Department  string        `bson:"department" json:"department"`
	Bio         string        `bson:"bio" json:"bio"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	JoinDate    time.Time     `bson:"joinDate" json:"joinDate"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
