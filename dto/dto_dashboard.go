package dto

import "time"

type DashboardStatsDTO struct {
	TotalEvents       int64 `json:"totalEvents"`
	UpcomingEvents    int64 `json:"upcomingEvents"`
	TotalPublications int64 `json:"totalPublications"`
	TotalBlogs        int64 `json:"totalBlogs"`
	PublishedBlogs    int64 `json:"publishedBlogs"`
	DraftBlogs        int64 `json:"draftBlogs"`
	TotalMembers      int64 `json:"totalMembers"`
	UnreadContacts    int64 `json:"unreadContacts"`
	TotalContacts     int64 `json:"totalContacts"`
	TotalUsers        int64 `json:"totalUsers"`
}

// ActivityDTO is one row of a recent-activity list.
type ActivityDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentActivitiesDTO struct {
	Events       []ActivityDTO `json:"events"`
	Publications []ActivityDTO `json:"publications"`
	Blogs        []ActivityDTO `json:"blogs"`
	Contacts     []ActivityDTO `json:"contacts"`
	Members      []ActivityDTO `json:"members"`
}

type MonthCountDTO struct {
	Year  int   `json:"year" bson:"year"`
	Month int   `json:"month" bson:"month"`
	Count int64 `json:"count" bson:"count"`
}

type KeyCountDTO struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

type AnalyticsDTO struct {
	MonthlyEvents         []MonthCountDTO `json:"monthlyEvents"`
	MonthlyPublications   []MonthCountDTO `json:"monthlyPublications"`
	EventCategories       []KeyCountDTO   `json:"eventCategories"`
	PublicationCategories []KeyCountDTO   `json:"publicationCategories"`
	BlogCategories        []KeyCountDTO   `json:"blogCategories"`
	MemberRoles           []KeyCountDTO   `json:"memberRoles"`
}

type DashboardDTO struct {
	Stats            DashboardStatsDTO   `json:"stats"`
	RecentActivities RecentActivitiesDTO `json:"recentActivities"`
	Analytics        AnalyticsDTO        `json:"analytics"`
	Degraded         []string            `json:"degraded"`
}
