package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(&Payload{WorkspaceID: "ws-1"}, "secret", time.Minute)
	require.NoError(t, err)

	payload, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ws-1", payload.WorkspaceID)
	assert.Equal(t, TokenIssuer, payload.Issuer)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpiredAndEmpty(t *testing.T) {
	expired, err := GenerateToken(&Payload{WorkspaceID: "ws-1"}, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired, "secret")
	assert.Error(t, err)

	empty, err := GenerateToken(&Payload{}, "secret", time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(empty, "secret")
	assert.Error(t, err)
}

func TestCookieRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteCookie(rec, "ws-42", "secret", false))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	r := httptest.NewRequest(http.MethodGet, "/ui/view", nil)
	r.AddCookie(cookies[0])

	payload, err := ReadCookie(r, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ws-42", payload.WorkspaceID)

	_, err = ReadCookie(httptest.NewRequest(http.MethodGet, "/", nil), "secret")
	assert.Error(t, err)
}
