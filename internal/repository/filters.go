package repository

import "time"

// Zero values mean "no constraint" on every filter.

type EventFilter struct {
	Category string
	Upcoming *bool     // true: date >= Now, false: date < Now
	Now      time.Time // reference instant for Upcoming
	Limit    int64
}

type PublicationFilter struct {
	Category string
	Limit    int64
}

type MemberFilter struct {
	Role     string
	IsActive *bool
}

type BlogFilter struct {
	Category    string
	IsPublished *bool
	Tag         string
	Limit       int64
}

type ContactFilter struct {
	IsRead *bool
}

type UserFilter struct {
	Role     string
	IsActive *bool
}
