package helper

import (
	"testing"
	"ticket_master/model"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "round-trip-secret")
	id := uuid.New()

	token, err := GenerateSessionToken(id, model.RoleOrganizer, time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserId)
	assert.Equal(t, model.RoleOrganizer, claims.UserRole)
}

func TestSessionTokenRejected(t *testing.T) {
	t.Setenv("SESSION_SECRET", "first-secret")
	id := uuid.New()

	expired, err := GenerateSessionToken(id, model.RoleStudent, time.Hour, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = ParseSessionToken(expired)
	assert.Error(t, err)

	valid, err := GenerateSessionToken(id, model.RoleStudent, time.Hour, time.Now())
	require.NoError(t, err)
	t.Setenv("SESSION_SECRET", "second-secret")
	_, err = ParseSessionToken(valid)
	assert.Error(t, err)

	_, err = ParseSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestSessionSecretMissing(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	_, err := GenerateSessionToken(uuid.New(), model.RoleStudent, time.Hour, time.Now())
	assert.ErrorIs(t, err, ErrSessionSecretMissing)
}

func TestSessionTTLFor(t *testing.T) {
	assert.Equal(t, 30*24*time.Hour, SessionTTLFor(true))
	assert.Equal(t, 14*24*time.Hour, SessionTTLFor(false))
}

func TestSafeRedirect(t *testing.T) {
	tests := map[string]string{
		"":                    "/",
		"/my-events":          "/my-events",
		"/admin/teams?x=1":    "/admin/teams?x=1",
		"https://evil.test":   "/",
		"//evil.test":         "/",
		"/\\evil.test":        "/",
		"javascript:alert(1)": "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, SafeRedirect(in), "input %q", in)
	}
}

func TestExtractPublicID(t *testing.T) {
	tests := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712/teams/logo_abc.png": "teams/logo_abc",
		"https://res.cloudinary.com/demo/image/upload/teams/logo_abc.jpg":       "teams/logo_abc",
		"https://example.test/images/logo.png":                                  "",
		"":                                                                      "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ExtractPublicID(in), "url %q", in)
	}
}
