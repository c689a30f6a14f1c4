package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"absss-backend/dto"
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/errs"
	"absss-backend/internal/logger"
	"absss-backend/internal/models"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"
	"absss-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

type harness struct {
	app      *fiber.App
	tokens   *auth.TokenManager
	events   *memRepo[models.Event, repository.EventFilter]
	blogs    *blogRepo
	members  *memRepo[models.Member, repository.MemberFilter]
	contacts *memRepo[models.Contact, repository.ContactFilter]
	users    *userRepo
	pingErr  error
}

func newHarness(t *testing.T, media storage.MediaStore) *harness {
	t.Helper()
	h := &harness{
		tokens:   auth.NewTokenManager("test-secret", time.Hour, "absss-test"),
		events:   newEventRepo(),
		blogs:    newBlogRepo(),
		members:  newMemberRepo(),
		contacts: newContactRepo(),
		users:    newUserRepo(),
	}

	app := fiber.New(fiber.Config{ErrorHandler: controllers.ErrorHandler(zap.NewNop())})
	app.Use(requestid.New())
	app.Use(logger.Middleware(zap.NewNop()))

	Register(app, Services{
		Tokens:   h.tokens,
		Auth:     services.NewAuthService(h.users, h.tokens),
		Users:    services.NewUserService(h.users),
		Events:   services.NewEventService(h.events),
		Members:  services.NewMemberService(h.members),
		Blogs:    services.NewBlogService(h.blogs),
		Contacts: services.NewContactService(h.contacts),
		Uploads:  services.NewUploadService(media),
		PingDatabase: func(context.Context) error {
			return h.pingErr
		},
	})
	h.app = app
	return h
}

func (h *harness) token(t *testing.T, role string, perms ...string) string {
	t.Helper()
	u := &models.User{ID: bson.NewObjectID(), Username: "staff", Role: role, Permissions: perms, IsActive: true}
	tok, _, err := h.tokens.Issue(u)
	require.NoError(t, err)
	return tok
}

func (h *harness) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return h.send(t, req)
}

func (h *harness) send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func validEvent() dto.EventCreateDTO {
	return dto.EventCreateDTO{
		Title:       "Annual Symposium",
		Description: "Talks and posters",
		Date:        "2099-05-01",
		Category:    models.EventConference,
		Location:    "Main Hall",
	}
}

func TestEvents_MutationsNeedCapability(t *testing.T) {
	h := newHarness(t, nil)

	status, raw := h.do(t, http.MethodPost, "/api/events", "", validEvent())
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NotEmpty(t, decode[dto.ErrorResponse](t, raw).RequestID)

	status, _ = h.do(t, http.MethodPost, "/api/events", h.token(t, models.RoleEditor, models.CapBlogs), validEvent())
	assert.Equal(t, fiber.StatusForbidden, status)

	status, raw = h.do(t, http.MethodPost, "/api/events", h.token(t, models.RoleEditor, models.CapEvents), validEvent())
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	created := decode[models.Event](t, raw)
	assert.True(t, created.IsUpcoming)
	assert.Len(t, h.events.docs, 1)
}

func TestEvents_ValidationErrorListsFields(t *testing.T) {
	h := newHarness(t, nil)
	body := validEvent()
	body.Title = "  "
	body.Category = "party"

	status, raw := h.do(t, http.MethodPost, "/api/events", h.token(t, models.RoleAdmin), body)
	require.Equal(t, fiber.StatusBadRequest, status)
	res := decode[dto.ErrorResponse](t, raw)
	assert.Contains(t, res.Fields, "title")
	assert.Contains(t, res.Fields, "category")
	assert.Empty(t, h.events.docs)
}

func TestEvents_MalformedBody(t *testing.T) {
	h := newHarness(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+h.token(t, models.RoleAdmin))

	status, raw := h.send(t, req)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[dto.ErrorResponse](t, raw).Fields, "body")
}

func TestEvents_PublicReads(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	past := models.Event{ID: bson.NewObjectID(), Title: "Old", Category: models.EventWorkshop, Date: time.Now().AddDate(-1, 0, 0)}
	next := models.Event{ID: bson.NewObjectID(), Title: "New", Category: models.EventSeminar, Date: time.Now().AddDate(1, 0, 0)}
	require.NoError(t, h.events.Insert(ctx, &past))
	require.NoError(t, h.events.Insert(ctx, &next))

	status, raw := h.do(t, http.MethodGet, "/api/events/upcoming", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	up := decode[[]models.Event](t, raw)
	require.Len(t, up, 1)
	assert.Equal(t, "New", up[0].Title)
	assert.True(t, up[0].IsUpcoming)

	status, raw = h.do(t, http.MethodGet, "/api/events?upcoming=false", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	old := decode[[]models.Event](t, raw)
	require.Len(t, old, 1)
	assert.False(t, old[0].IsUpcoming)

	status, raw = h.do(t, http.MethodGet, "/api/events/"+next.ID.Hex(), "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "New", decode[models.Event](t, raw).Title)

	status, _ = h.do(t, http.MethodGet, "/api/events/not-an-id", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestEvents_UpdateAndDelete(t *testing.T) {
	h := newHarness(t, nil)
	tok := h.token(t, models.RoleEditor, models.CapEvents)
	ev := models.Event{ID: bson.NewObjectID(), Title: "Draft title", Category: models.EventLecture, Date: time.Now()}
	require.NoError(t, h.events.Insert(context.Background(), &ev))

	title := "Final title"
	status, raw := h.do(t, http.MethodPut, "/api/events/"+ev.ID.Hex(), tok, dto.EventUpdateDTO{Title: &title})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	assert.Equal(t, "Final title", decode[models.Event](t, raw).Title)

	status, _ = h.do(t, http.MethodDelete, "/api/events/"+ev.ID.Hex(), tok, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = h.do(t, http.MethodDelete, "/api/events/"+ev.ID.Hex(), tok, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func seedBlogs(t *testing.T, h *harness) (models.Blog, models.Blog) {
	t.Helper()
	ctx := context.Background()
	live := models.Blog{ID: bson.NewObjectID(), Title: "Live", Category: models.BlogNews, IsPublished: true}
	draft := models.Blog{ID: bson.NewObjectID(), Title: "Draft", Category: models.BlogNews}
	require.NoError(t, h.blogs.Insert(ctx, &live))
	require.NoError(t, h.blogs.Insert(ctx, &draft))
	return live, draft
}

func TestBlogs_DraftsStayPrivate(t *testing.T) {
	h := newHarness(t, nil)
	_, draft := seedBlogs(t, h)

	status, raw := h.do(t, http.MethodGet, "/api/blogs", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]models.Blog](t, raw), 1)

	status, raw = h.do(t, http.MethodGet, "/api/blogs?isPublished=false", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]models.Blog](t, raw), 1, "the query cannot reveal drafts")

	status, _ = h.do(t, http.MethodGet, "/api/blogs/"+draft.ID.Hex(), "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, raw = h.do(t, http.MethodGet, "/api/blogs/category/"+models.BlogNews, "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]models.Blog](t, raw), 1)
}

func TestBlogs_EditorsSeeDrafts(t *testing.T) {
	h := newHarness(t, nil)
	_, draft := seedBlogs(t, h)
	tok := h.token(t, models.RoleEditor, models.CapBlogs)

	status, raw := h.do(t, http.MethodGet, "/api/blogs", tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]models.Blog](t, raw), 2)

	status, raw = h.do(t, http.MethodGet, "/api/blogs?isPublished=false", tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	drafts := decode[[]models.Blog](t, raw)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Draft", drafts[0].Title)

	status, _ = h.do(t, http.MethodGet, "/api/blogs/"+draft.ID.Hex(), tok, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestBlogs_StaleTokenOnPublicRead(t *testing.T) {
	h := newHarness(t, nil)
	live, _ := seedBlogs(t, h)

	expired := auth.NewTokenManager("test-secret", -time.Minute, "absss-test")
	old, _, err := expired.Issue(&models.User{ID: bson.NewObjectID(), Username: "chair", Role: models.RoleAdmin})
	require.NoError(t, err)

	for _, tok := range []string{"garbage", old} {
		status, raw := h.do(t, http.MethodGet, "/api/blogs", tok, nil)
		require.Equal(t, fiber.StatusOK, status)
		blogs := decode[[]models.Blog](t, raw)
		require.Len(t, blogs, 1, "drafts stay hidden")
		assert.Equal(t, live.ID, blogs[0].ID)

		status, _ = h.do(t, http.MethodGet, "/api/members", tok, nil)
		assert.Equal(t, fiber.StatusOK, status)
	}

	status, _ := h.do(t, http.MethodPost, "/api/blogs", old, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestBlogs_ViewCounter(t *testing.T) {
	h := newHarness(t, nil)
	live, draft := seedBlogs(t, h)

	for i := 1; i <= 3; i++ {
		status, raw := h.do(t, http.MethodPatch, "/api/blogs/"+live.ID.Hex()+"/view", "", nil)
		require.Equal(t, fiber.StatusOK, status)
		res := decode[dto.BlogViewsDTO](t, raw)
		assert.Equal(t, int64(i), res.Views)
		assert.Equal(t, live.ID.Hex(), res.ID)
	}

	status, _ := h.do(t, http.MethodPatch, "/api/blogs/"+draft.ID.Hex()+"/view", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestMembers_ActiveOnlyByDefault(t *testing.T) {
	h := newHarness(t, nil)
	ctx := context.Background()
	require.NoError(t, h.members.Insert(ctx, &models.Member{ID: bson.NewObjectID(), Name: "Ada", Role: models.MemberFaculty, IsActive: true}))
	require.NoError(t, h.members.Insert(ctx, &models.Member{ID: bson.NewObjectID(), Name: "Bo", Role: models.MemberAlumni}))

	status, raw := h.do(t, http.MethodGet, "/api/members?activeOnly=false", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]models.Member](t, raw), 1)

	status, raw = h.do(t, http.MethodGet, "/api/members?activeOnly=false", h.token(t, models.RoleEditor, models.CapMembers), nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]models.Member](t, raw), 2)

	status, raw = h.do(t, http.MethodGet, "/api/members?isActive=false", h.token(t, models.RoleAdmin), nil)
	require.Equal(t, fiber.StatusOK, status)
	inactive := decode[[]models.Member](t, raw)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Bo", inactive[0].Name)
}

func TestContact_PublicCreateAdminRead(t *testing.T) {
	h := newHarness(t, nil)

	status, raw := h.do(t, http.MethodPost, "/api/contact", "", dto.ContactCreateDTO{
		Name:    "Visitor",
		Email:   "visitor@example.org",
		Message: "Hello there",
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	msg := decode[models.Contact](t, raw)
	assert.Equal(t, models.DefaultContactSubject, msg.Subject)

	status, _ = h.do(t, http.MethodGet, "/api/contact", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	tok := h.token(t, models.RoleEditor, models.CapContacts)
	status, raw = h.do(t, http.MethodPatch, "/api/contact/"+msg.ID.Hex()+"/read", tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, decode[models.Contact](t, raw).IsRead)

	status, raw = h.do(t, http.MethodGet, "/api/contact?isRead=false", tok, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, decode[[]models.Contact](t, raw))
}

func TestAuth_LoginAndProfile(t *testing.T) {
	h := newHarness(t, nil)
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	u := models.User{
		ID:           bson.NewObjectID(),
		Username:     "chair",
		Email:        "chair@example.org",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Permissions:  []string{models.CapAll},
		IsActive:     true,
	}
	require.NoError(t, h.users.Insert(context.Background(), &u))

	status, raw := h.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequestDTO{Identifier: "chair", Password: "wrong password"})
	require.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid credentials", decode[dto.ErrorResponse](t, raw).Error)

	status, raw = h.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequestDTO{Identifier: "Chair@Example.org", Password: "correct horse"})
	require.Equal(t, fiber.StatusOK, status, string(raw))
	login := decode[dto.LoginResponseDTO](t, raw)
	require.NotEmpty(t, login.Token)

	status, raw = h.do(t, http.MethodGet, "/api/auth/profile", login.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	profile := decode[dto.UserProfileDTO](t, raw)
	assert.Equal(t, "chair", profile.Username)
	assert.NotNil(t, profile.LastLogin)
	assert.NotContains(t, string(raw), "password")

	status, raw = h.do(t, http.MethodGet, "/api/users", login.Token, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.UserProfileDTO](t, raw), 1)

	status, raw = h.do(t, http.MethodDelete, "/api/users/"+u.ID.Hex(), login.Token, nil)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "cannot delete your own account", decode[dto.ErrorResponse](t, raw).Error)
}

func TestUsers_AdminRoleOnly(t *testing.T) {
	h := newHarness(t, nil)
	target := models.User{ID: bson.NewObjectID(), Username: "root", Email: "root@example.org", Role: models.RoleAdmin, IsActive: true}
	require.NoError(t, h.users.Insert(context.Background(), &target))

	for _, perms := range [][]string{{models.CapUsers}, {models.CapAll}} {
		tok := h.token(t, models.RoleEditor, perms...)
		role := models.RoleAdmin

		status, _ := h.do(t, http.MethodPost, "/api/users", tok, dto.UserCreateDTO{
			Username: "mallory", Email: "mallory@example.org", Password: "password1", Role: models.RoleAdmin,
		})
		assert.Equal(t, fiber.StatusForbidden, status, "create with %v", perms)

		status, _ = h.do(t, http.MethodPut, "/api/users/"+target.ID.Hex(), tok, dto.UserUpdateDTO{Role: &role})
		assert.Equal(t, fiber.StatusForbidden, status, "update with %v", perms)

		status, _ = h.do(t, http.MethodDelete, "/api/users/"+target.ID.Hex(), tok, nil)
		assert.Equal(t, fiber.StatusForbidden, status, "delete with %v", perms)

		status, _ = h.do(t, http.MethodPatch, "/api/users/"+target.ID.Hex()+"/toggle-status", tok, nil)
		assert.Equal(t, fiber.StatusForbidden, status, "toggle with %v", perms)
	}

	_, err := h.users.FindByIdentifier(context.Background(), "mallory", "mallory@example.org")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	got, err := h.users.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	status, _ := h.do(t, http.MethodPost, "/api/users", h.token(t, models.RoleAdmin), dto.UserCreateDTO{
		Username: "helper", Email: "helper@example.org", Password: "password1",
	})
	assert.Equal(t, fiber.StatusCreated, status)
}

func TestDashboard_RequiresAnalytics(t *testing.T) {
	h := newHarness(t, nil)

	status, _ := h.do(t, http.MethodGet, "/api/dashboard/stats", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = h.do(t, http.MethodGet, "/api/dashboard/stats", h.token(t, models.RoleEditor, models.CapEvents), nil)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func uploadRequest(t *testing.T, path, token, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func TestUpload(t *testing.T) {
	media := &memMedia{}
	h := newHarness(t, media)
	tok := h.token(t, models.RoleEditor, models.CapUploads)

	status, raw := h.send(t, uploadRequest(t, "/api/upload/pdf", tok, "paper.pdf", "application/pdf", []byte("%PDF-1.7")))
	require.Equal(t, fiber.StatusCreated, status, string(raw))
	res := decode[dto.UploadResultDTO](t, raw)
	assert.Regexp(t, `^pdfs/[0-9a-f-]{36}\.pdf$`, res.Key)
	assert.Equal(t, "https://cdn.example.org/"+res.Key, res.URL)
	assert.Equal(t, []byte("%PDF-1.7"), media.objects[res.Key])

	status, raw = h.send(t, uploadRequest(t, "/api/upload/image", tok, "paper.pdf", "application/pdf", []byte("%PDF-1.7")))
	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, decode[dto.ErrorResponse](t, raw).Fields, "file")

	status, _ = h.send(t, uploadRequest(t, "/api/upload/video", tok, "clip.mp4", "video/mp4", []byte("x")))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpload_NotConfigured(t *testing.T) {
	h := newHarness(t, nil)
	tok := h.token(t, models.RoleAdmin)

	status, raw := h.send(t, uploadRequest(t, "/api/upload/image", tok, "a.png", "image/png", []byte("png")))
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "storage unavailable", decode[dto.ErrorResponse](t, raw).Error)
}

func TestHealth(t *testing.T) {
	h := newHarness(t, nil)

	status, _ := h.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, raw := h.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "connected", decode[dto.HealthDTO](t, raw).Database)

	h.pingErr = errors.New("no reachable servers")
	status, raw = h.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "unreachable", decode[dto.HealthDTO](t, raw).Database)
}
