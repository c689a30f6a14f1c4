package auth

import (
	"testing"
	"time"

	"absss-backend/internal/errs"
	"absss-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newTestUser() *models.User {
	return &models.User{
		ID:          bson.NewObjectID(),
		Username:    "editor1",
		Email:       "editor1@absss.org",
		Role:        models.RoleEditor,
		Permissions: []string{models.CapEvents, models.CapBlogs},
		IsActive:    true,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret-key-at-least-32-chars", time.Hour, "absss")
	u := newTestUser()

	token, exp, err := m.Issue(u)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UID)
	assert.Equal(t, u.ID.Hex(), claims.Subject)
	assert.Equal(t, "absss", claims.Issuer)
	assert.Equal(t, models.RoleEditor, claims.Role)
	assert.Equal(t, []string{models.CapEvents, models.CapBlogs}, claims.Permissions)
	assert.True(t, claims.Can(models.CapBlogs))
	assert.False(t, claims.Can(models.CapUsers))
}

func TestVerify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret-key-at-least-32-chars", -time.Minute, "absss")

	token, _, err := m.Issue(newTestUser())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, errs.ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one-secret-one-secret-one", time.Hour, "absss")
	verifier := NewTokenManager("secret-two-secret-two-secret-two", time.Hour, "absss")

	token, _, err := issuer.Issue(newTestUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret-key-at-least-32-chars", time.Hour, "absss")

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, errs.ErrTokenInvalid, tok)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	secret := "test-secret-key-at-least-32-chars"
	m := NewTokenManager(secret, time.Hour, "absss")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   bson.NewObjectID().Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: models.RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestVerify_MissingSubject(t *testing.T) {
	secret := "test-secret-key-at-least-32-chars"
	m := NewTokenManager(secret, time.Hour, "absss")

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, errs.ErrTokenInvalid)
}
