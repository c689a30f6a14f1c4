package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleEditor    = "editor"
)

var UserRoles = []string{RoleAdmin, RoleModerator, RoleEditor}

// Capabilities a non-admin account can be granted.
const (
	CapEvents       = "events"
	CapPublications = "publications"
	CapMembers      = "members"
	CapBlogs        = "blogs"
	CapContacts     = "contacts"
	CapUsers        = "users"
	CapAnalytics    = "analytics"
	CapUploads      = "uploads"

	// CapAll grants every capability.
	CapAll = "all"
)

var Capabilities = []string{CapEvents, CapPublications, CapMembers, CapBlogs, CapContacts, CapUsers, CapAnalytics, CapUploads, CapAll}

var DefaultPermissions = []string{CapEvents, CapPublications, CapMembers, CapContacts}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"`
	Role         string        `bson:"role" json:"role"`
	Permissions  []string      `bson:"permissions" json:"permissions"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	LastLogin    *time.Time    `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
