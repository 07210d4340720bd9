package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetSessionCookie(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())
	rr := httptest.NewRecorder()

	h.setSessionCookie(rr, testToken)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "session", c.Name)
	assert.Equal(t, testToken, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 7*24*60*60, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
}

func TestSetSessionCookie_Configured(t *testing.T) {
	cfg := testConfig()
	cfg.Cookie.Name = "sid"
	cfg.Cookie.Insecure = true
	cfg.Cookie.SameSite = "Strict"
	cfg.Cookie.Domain = "example.com"
	h, _ := newTestHandler(t, cfg)
	rr := httptest.NewRecorder()

	h.setSessionCookie(rr, testToken)

	header := rr.Header().Get("Set-Cookie")
	assert.Contains(t, header, "sid="+testToken)
	assert.Contains(t, header, "Domain=example.com")
	assert.Contains(t, header, "SameSite=Strict")
	assert.NotContains(t, header, "Secure")
}

func TestClearSessionCookie(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())
	rr := httptest.NewRecorder()

	h.clearSessionCookie(rr)

	header := rr.Header().Get("Set-Cookie")
	assert.Contains(t, header, "session=;")
	assert.Contains(t, header, "Max-Age=0")
}

func TestSessionToken(t *testing.T) {
	h, _ := newTestHandler(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, h.sessionToken(req))

	req.AddCookie(sessionCookie(testToken))
	assert.Equal(t, testToken, h.sessionToken(req))
}

func TestSameSiteMode(t *testing.T) {
	assert.Equal(t, http.SameSiteLaxMode, sameSiteMode("lax"))
	assert.Equal(t, http.SameSiteStrictMode, sameSiteMode("STRICT"))
	assert.Equal(t, http.SameSiteNoneMode, sameSiteMode("none"))
	assert.Equal(t, http.SameSiteNoneMode, sameSiteMode(""))
}
