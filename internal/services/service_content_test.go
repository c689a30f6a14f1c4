package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"absss-backend/dto"
	"absss-backend/internal/errs"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicationService_CreateAndRecent(t *testing.T) {
	repo := newFakePublicationRepo()
	svc := NewPublicationService(repo)
	svc.now = fixedClock(refTime)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.PublicationCreateDTO{Title: "No authors", Authors: []string{}})
	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.FieldNames(), "authors")
	assert.Contains(t, ve.FieldNames(), "pdfUrl")

	for i := 0; i < 8; i++ {
		_, err := svc.Create(ctx, dto.PublicationCreateDTO{
			Title:         "Paper",
			Authors:       []string{" A. Author ", "B. Author"},
			Abstract:      "Abstract",
			PdfURL:        "https://cdn.example.org/p.pdf",
			Category:      models.PublicationCaseStudy,
			PublishedDate: "2024-0" + string(rune('1'+i)) + "-01",
			Journal:       "Journal of Things",
		})
		require.NoError(t, err)
	}

	recent, err := svc.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, RecentPublicationsLimit)
	assert.Equal(t, 8, int(recent[0].PublishedDate.Month()))
	assert.Equal(t, []string{"A. Author", "B. Author"}, recent[0].Authors)

	reviews, err := svc.List(ctx, repository.PublicationFilter{Category: models.PublicationReview})
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func validMember(email string) dto.MemberCreateDTO {
	return dto.MemberCreateDTO{
		Name:        "Dr. Rao",
		Role:        models.MemberFaculty,
		Designation: "Professor",
		Email:       email,
		Department:  "Physics",
		Bio:         "Works on optics.",
	}
}

func TestMemberService_DefaultsAndUniqueEmail(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())
	svc.now = fixedClock(refTime)
	ctx := context.Background()

	m, err := svc.Create(ctx, validMember(" Rao@Uni.EDU "))
	require.NoError(t, err)
	assert.Equal(t, "rao@uni.edu", m.Email)
	assert.True(t, m.IsActive)
	assert.Equal(t, refTime, m.JoinDate)

	_, err = svc.Create(ctx, validMember("rao@uni.edu"))
	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email"}, ve.FieldNames())

	other, err := svc.Create(ctx, validMember("other@uni.edu"))
	require.NoError(t, err)
	_, err = svc.Update(ctx, other.ID.Hex(), dto.MemberUpdateDTO{Email: ptr("RAO@uni.edu")})
	ve, ok = errs.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email"}, ve.FieldNames())
}

func TestMemberService_ListOrderAndActive(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())
	ctx := context.Background()

	add := func(name, role, email string, active bool) {
		b := validMember(email)
		b.Name, b.Role, b.IsActive = name, role, &active
		_, err := svc.Create(ctx, b)
		require.NoError(t, err)
	}
	add("Zed", models.MemberStudent, "z@uni.edu", true)
	add("Amy", models.MemberStudent, "a@uni.edu", true)
	add("Bob", models.MemberAlumni, "b@uni.edu", false)
	add("Cat", models.MemberFaculty, "c@uni.edu", true)

	active := true
	list, err := svc.List(ctx, repository.MemberFilter{IsActive: &active})
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, m := range list {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Cat", "Amy", "Zed"}, names)

	all, err := svc.List(ctx, repository.MemberFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Bob", all[0].Name)
}

func validBlog(published bool) dto.BlogCreateDTO {
	return dto.BlogCreateDTO{
		Title:       "Hello",
		Content:     "<p>body</p>",
		Excerpt:     "short",
		Author:      "Editor",
		Category:    models.BlogNews,
		Tags:        []string{" go ", "", "mongo"},
		IsPublished: &published,
	}
}

func TestBlogService_DraftsHidden(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	draft, err := svc.Create(ctx, validBlog(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "mongo"}, draft.Tags)
	assert.Zero(t, draft.Views)

	_, err = svc.Get(ctx, draft.ID.Hex(), false)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	got, err := svc.Get(ctx, draft.ID.Hex(), true)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)

	published, err := svc.Published(ctx)
	require.NoError(t, err)
	assert.Empty(t, published)

	_, err = svc.IncrementViews(ctx, draft.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBlogService_ConcurrentViews(t *testing.T) {
	repo := newFakeBlogRepo()
	svc := NewBlogService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, validBlog(true))
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.IncrementViews(ctx, b.ID.Hex())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, b.ID.Hex(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Views)

	// A general update never moves the counter.
	updated, err := svc.Update(ctx, b.ID.Hex(), dto.BlogUpdateDTO{Title: ptr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, int64(n), updated.Views)
}

func TestBlogService_ListingLimits(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		_, err := svc.Create(ctx, validBlog(true))
		require.NoError(t, err)
	}
	tutorial := validBlog(true)
	tutorial.Category = models.BlogTutorial
	_, err := svc.Create(ctx, tutorial)
	require.NoError(t, err)

	published, err := svc.Published(ctx)
	require.NoError(t, err)
	assert.Len(t, published, PublishedBlogsLimit)

	recent, err := svc.Recent(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, RecentBlogsLimit)

	byCat, err := svc.ByCategory(ctx, models.BlogTutorial)
	require.NoError(t, err)
	assert.Len(t, byCat, 1)

	tagged, err := svc.List(ctx, repository.BlogFilter{Tag: "mongo"})
	require.NoError(t, err)
	assert.Len(t, tagged, 13)
}

func TestBlogService_ExcerptTooLong(t *testing.T) {
	svc := NewBlogService(newFakeBlogRepo())
	b := validBlog(true)
	b.Excerpt = strings.Repeat("x", 301)

	_, err := svc.Create(context.Background(), b)
	_, ok := errs.AsValidation(err)
	assert.True(t, ok)
}

func TestContactService(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())
	ctx := context.Background()

	c, err := svc.Create(ctx, dto.ContactCreateDTO{Name: "Visitor", Email: "V@Example.com", Message: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultContactSubject, c.Subject)
	assert.Equal(t, "v@example.com", c.Email)
	assert.False(t, c.IsRead)

	_, err = svc.Create(ctx, dto.ContactCreateDTO{Name: "Visitor", Email: "not-an-email"})
	ve, ok := errs.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email", "message"}, ve.FieldNames())

	unread := false
	list, err := svc.List(ctx, repository.ContactFilter{IsRead: &unread})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	read, err := svc.MarkRead(ctx, c.ID.Hex())
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.Equal(t, "Hi", read.Message)

	responded, err := svc.Update(ctx, c.ID.Hex(), dto.ContactUpdateDTO{Responded: ptr(true)})
	require.NoError(t, err)
	assert.True(t, responded.Responded)
	assert.True(t, responded.IsRead)

	require.NoError(t, svc.Delete(ctx, c.ID.Hex()))
	_, err = svc.Get(ctx, c.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
